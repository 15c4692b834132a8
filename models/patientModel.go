package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conditions a patient can be treated for.
//
//	COPD : chronic obstructive pulmonary disease
//	ED   : erectile dysfunction
//	OC   : orthopedic condition
//	EY   : eyes
//	AI   : auto immune
//	DT2  : diabetes type 2
//	SCI  : spinal cord injury
//	TBI  : traumatic brain injury
var Conditions = []string{"COPD", "ED", "OC", "EY", "AI", "DT2", "SCI", "TBI"}

// Procedures are the sources of stem cells. The procedure to apply is related
// to the patient condition and could be both.
var Procedures = []string{"Adipose Derived Stem Cell", "Bone Marrow"}

// DeliveryMethods for a procedure.
//
//	IVN : intravenous          ILS : intralesional
//	IAR : intra arterial       LFT : localized fat transfer
//	IAC : intra articular      LHD : localized head
//	ITC : intrathecal          LPN : localized penis
//	LFC : localized facial     LEY : localized eyes
var DeliveryMethods = []string{"IVN", "IAR", "IAC", "ITC", "ILS", "LFT", "LHD", "LPN", "LFC", "LEY"}

// MaxFollowUps caps the follow-up records kept per patient.
const MaxFollowUps = 5

// FollowUp is one post-procedure check: a phone call or questionnaire with a
// 1-5 result scale and the date it was applied.
type FollowUp struct {
	Type   string `bson:"type" json:"type"`
	Result int    `bson:"result" json:"result"`
	Date   string `bson:"date" json:"date"`
}

// Validate implements validation.Validatable so follow-ups are checked
// whenever a patient input is validated.
func (f FollowUp) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type, validation.Required),
		validation.Field(&f.Result, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// Patient represents a person tracked through a stem-cell procedure. The phone
// number is the unique value patients are looked up by. The medical unit
// reference is soft; deleting a unit leaves its patients in place.
type Patient struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UnitID         *primitive.ObjectID `bson:"unit_id,omitempty" json:"unit_id,omitempty"`
	PictureAddress string              `bson:"pictureAddress,omitempty" json:"pictureAddress,omitempty"`
	FirstName      string              `bson:"firstName" json:"firstName"`
	LastName       string              `bson:"lastName" json:"lastName"`
	BirthDate      string              `bson:"birthDate" json:"birthDate"`
	Address        Address             `bson:"address" json:"address"`
	Email          string              `bson:"email" json:"email"`
	PhoneNumber    string              `bson:"phoneNumber" json:"phoneNumber"`
	Condition      string              `bson:"condition" json:"condition"`
	Procedure      string              `bson:"procedure" json:"procedure"`
	DeliveryMethod string              `bson:"deliveryMethod" json:"deliveryMethod"`
	FollowUp       []FollowUp          `bson:"followUp,omitempty" json:"followUp,omitempty"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

// PatientInput is the payload accepted by the patient create and update
// routes. The address arrives as flat street/city/state/zip fields.
type PatientInput struct {
	PictureAddress string     `json:"pictureAddress"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	BirthDate      string     `json:"birthDate"`
	Street         string     `json:"street"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Zip            string     `json:"zip"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phoneNumber"`
	Condition      string     `json:"condition"`
	Procedure      string     `json:"procedure"`
	DeliveryMethod string     `json:"deliveryMethod"`
	FollowUp       []FollowUp `json:"followUp"`
}

// Address assembles the flat input fields into the stored tuple.
func (in PatientInput) Address() Address {
	return Address{Street: in.Street, City: in.City, State: in.State, Zip: in.Zip}
}

func (Patient) CollectionName() string {
	return "patients"
}
