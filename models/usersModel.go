package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Roles are recorded on every user but not yet enforced by any
// route; authorization today is session-or-nothing.
const (
	RoleRegularUser = "regular_user"
	RoleUnitAdmin   = "unit_admin"
	RoleSuperAdmin  = "super_admin"
)

// Roles lists the allowed values for User.Role.
var Roles = []string{RoleRegularUser, RoleUnitAdmin, RoleSuperAdmin}

// User represents an account in the system. The encrypted password is never
// serialized to JSON.
type User struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UnitID            *primitive.ObjectID `bson:"unit_id,omitempty" json:"unit_id,omitempty"`
	Username          string              `bson:"username" json:"username"`
	EncryptedPassword string              `bson:"encryptedPassword" json:"-"`
	FullName          string              `bson:"fullName" json:"fullName"`
	Role              string              `bson:"role" json:"role"`
	CreatedAt         time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `bson:"updated_at" json:"updated_at"`
}

// SignupInput is the payload accepted by the signup route. Role is not
// accepted at signup; new accounts always start as regular_user.
type SignupInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func (User) CollectionName() string {
	return "users"
}
