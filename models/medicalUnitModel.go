package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the ordered street/city/state/zip tuple shared by medical units
// and patients.
type Address struct {
	Street string `bson:"street" json:"street"`
	City   string `bson:"city" json:"city"`
	State  string `bson:"state" json:"state"`
	Zip    string `bson:"zip" json:"zip"`
}

// MedicalUnit represents a clinic where procedures are performed. The country
// reference is soft; deleting a country leaves its units in place.
type MedicalUnit struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CountryID   *primitive.ObjectID `bson:"country_id,omitempty" json:"country_id,omitempty"`
	CountryCode string              `bson:"countryCode" json:"countryCode"`
	Name        string              `bson:"name" json:"name"`
	Address     Address             `bson:"address" json:"address"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// MedicalUnitInput is the payload accepted by the medical unit create and
// update routes. The address arrives as flat street/city/state/zip fields.
type MedicalUnitInput struct {
	Country string `json:"country"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// Address assembles the flat input fields into the stored tuple.
func (in MedicalUnitInput) Address() Address {
	return Address{Street: in.Street, City: in.City, State: in.State, Zip: in.Zip}
}

func (MedicalUnit) CollectionName() string {
	return "medical_units"
}
