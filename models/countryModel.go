package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Country represents a country where medical units operate. Codes are ISO
// style and stored uppercased. Unit references are soft; deleting a country
// does not touch its units.
type Country struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Code      string               `bson:"code" json:"code"`
	Name      string               `bson:"name" json:"name"`
	UnitIDs   []primitive.ObjectID `bson:"unit_ids,omitempty" json:"unit_ids,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}

// CountryInput is the payload accepted by the country create and update routes.
type CountryInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (Country) CollectionName() string {
	return "countries"
}
