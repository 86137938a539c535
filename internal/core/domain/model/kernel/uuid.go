package kernel

import (
	"encoding/json"
	"fmt"

	"catalog/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

const canonicalUUIDLength = 36

// IdentifierValidator checks the textual form of an identifier before it is
// turned into a UUID. It is a separate step so callers can observe or replace it.
type IdentifierValidator interface {
	Validate(id string) error
}

// IdentifierValidatorFunc adapts a function to IdentifierValidator.
type IdentifierValidatorFunc func(id string) error

func (f IdentifierValidatorFunc) Validate(id string) error {
	return f(id)
}

// DefaultIdentifierValidator accepts the canonical 8-4-4-4-12 hexadecimal form
// of a version 4, RFC 4122 variant UUID and nothing else.
var DefaultIdentifierValidator IdentifierValidator = IdentifierValidatorFunc(validateV4)

func validateV4(id string) error {
	if len(id) != canonicalUUIDLength {
		return fmt.Errorf("expected %d characters, got %d", canonicalUUIDLength, len(id))
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	if parsed.Version() != 4 {
		return fmt.Errorf("expected version 4, got %d", parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		return fmt.Errorf("unexpected variant %s", parsed.Variant())
	}
	return nil
}

// UUID is a value object that represents the identifier of an entity.
// It wraps the github.com/google/uuid implementation and only ever holds
// version 4 identifiers. A parsed UUID keeps the exact text it was parsed
// from: String returns it unchanged and two UUIDs are equal only when their
// texts are, so "32EAC1E7-..." and "32eac1e7-..." are different identifiers.
//
// The zero value of UUID is invalid and must be constructed using one of the provided
// factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// Example usage:
//
//	// Create a new random UUID
//	id := kernel.NewUUID()
//
//	// Create from string representation
//	id, err := kernel.UUIDFromString("32eac1e7-a640-40c0-b011-512f4f43680c")
//	if err != nil {
//	    // err is an *errs.IdentifierIsInvalidError
//	}
type UUID struct {
	id   uuid.UUID
	text string
}

// NewUUID generates a new random UUID (version 4). Generation is trusted, so
// the identifier validator is not consulted.
func NewUUID() UUID {
	id := uuid.New()
	return UUID{
		id:   id,
		text: id.String(),
	}
}

// UUIDFromString parses a UUID from its canonical string representation using
// DefaultIdentifierValidator. Braces, URN prefixes, missing hyphens and
// non-v4 identifiers are rejected with *errs.IdentifierIsInvalidError.
func UUIDFromString(s string) (UUID, error) {
	return UUIDFromStringWith(s, DefaultIdentifierValidator)
}

// UUIDFromStringWith is UUIDFromString with an explicit validation step.
func UUIDFromStringWith(s string, validator IdentifierValidator) (UUID, error) {
	if validator == nil {
		validator = DefaultIdentifierValidator
	}
	if err := validator.Validate(s); err != nil {
		return UUID{}, errs.NewIdentifierIsInvalidError(s)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewIdentifierIsInvalidError(s)
	}
	return UUID{id: id, text: s}, nil
}

// MustUUIDFromString is like UUIDFromString but panics on invalid input.
// It is meant for package-level fixtures and tests.
func MustUUIDFromString(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(fmt.Sprintf("kernel: %q: %v", s, err))
	}
	return id
}

// UUIDFromBytes creates a UUID from a 16 byte slice. The result goes through
// the same validation as UUIDFromString.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewIdentifierIsInvalidErrorWithCause(fmt.Sprintf("%x", b), err)
	}
	if id == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUIDFromString(id.String())
}

// String returns the identifier exactly as it was given to UUIDFromString.
// Generated identifiers use the lowercase canonical form.
func (u UUID) String() string {
	return u.text
}

// Bytes returns the underlying uuid.UUID value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs by their text.
func (u UUID) IsEqual(other UUID) bool {
	return u.text == other.text
}

// Equals implements ValueObject. Only another UUID value can be equal.
func (u UUID) Equals(other ValueObject) bool {
	return SameValue(u, other)
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.text == "" {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := UUIDFromString(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
