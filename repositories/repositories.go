package repositories

import (
	"errors"
	"time"
)

// ErrDuplicateKey is returned when an insert or update violates one of the
// unique indexes. Services translate it into a response naming the
// conflicting value.
var ErrDuplicateKey = errors.New("duplicate key")

// queryTimeout bounds every single-document and list read.
const queryTimeout = 5 * time.Second
