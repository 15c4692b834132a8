package services

import (
	"errors"

	"github.com/ogm710811/stem-cell-API/repositories"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidID flags a malformed document id. Distinct from a
	// well-formed id that matches nothing, which is not an error.
	ErrInvalidID = errors.New("specified id is not valid")

	// ErrDuplicateKey is the store-level uniqueness violation.
	ErrDuplicateKey = repositories.ErrDuplicateKey
)

// DuplicateKeyError carries the client-facing message naming the conflicting
// value. It matches ErrDuplicateKey under errors.Is.
type DuplicateKeyError struct {
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
