package utils

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ogm710811/stem-cell-API/models"
)

// ValidateSignupInput checks the signup payload for the required credentials.
func ValidateSignupInput(in models.SignupInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required),
		validation.Field(&in.Password, validation.Required),
		validation.Field(&in.Fullname, validation.Required),
	)
}

// ValidateCountryInput checks the country payload. Code normalization to
// uppercase happens in the service, before storage.
func ValidateCountryInput(in models.CountryInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Code, validation.Required),
		validation.Field(&in.Name, validation.Required),
	)
}

// ValidateMedicalUnitInput checks the medical unit payload, including all four
// address fields.
func ValidateMedicalUnitInput(in models.MedicalUnitInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Country, validation.Required),
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Street, validation.Required),
		validation.Field(&in.City, validation.Required),
		validation.Field(&in.State, validation.Required),
		validation.Field(&in.Zip, validation.Required),
	)
}

// ValidatePatientInput checks the patient payload: required fields, the three
// enumerated fields against their allowed sets, and the follow-up cap. Each
// follow-up entry validates itself via models.FollowUp.Validate.
func ValidatePatientInput(in models.PatientInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.Required),
		validation.Field(&in.LastName, validation.Required),
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.PhoneNumber, validation.Required),
		validation.Field(&in.Condition, validation.Required, oneOf(models.Conditions)),
		validation.Field(&in.Procedure, validation.Required, oneOf(models.Procedures)),
		validation.Field(&in.DeliveryMethod, validation.Required, oneOf(models.DeliveryMethods)),
		validation.Field(&in.FollowUp, validation.Length(0, models.MaxFollowUps)),
	)
}

// ValidateRole checks a role against the allowed set. Blank roles pass; the
// default is applied at creation.
func ValidateRole(role string) error {
	if role == "" {
		return nil
	}
	return validation.Validate(role, oneOf(models.Roles))
}

// oneOf builds an In rule whose error names the allowed set.
func oneOf(allowed []string) validation.Rule {
	values := make([]interface{}, len(allowed))
	for i, v := range allowed {
		values[i] = v
	}
	return validation.In(values...).Error(fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}
