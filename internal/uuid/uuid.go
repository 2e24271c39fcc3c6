// Package uuid extends google/uuid with gin binding support.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID can be bound from URI and query parameters.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero value, an empty UUID.
var Nil UUID

// UnmarshalParam implements the gin binding.BindUnmarshaler interface.
// An empty parameter binds to the nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
