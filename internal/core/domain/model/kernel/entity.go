package kernel

import "encoding/json"

// EntityType names a concrete kind of entity. It stands in for runtime type
// information: entities of different types are never equal, and repositories
// use it to describe what they could not find.
type EntityType struct {
	name string
}

func NewEntityType(name string) EntityType {
	return EntityType{name: name}
}

func (t EntityType) Name() string {
	return t.name
}

func (t EntityType) String() string {
	return t.name
}

// Entity is a persistable domain object identified by a value object.
//
// Implementations compare through SameIdentity and serialize themselves through
// MarshalJSON; the encoding must include the identifier.
type Entity interface {
	EntityID() ValueObject
	EntityType() EntityType
	Equals(other Entity) bool
	json.Marshaler
}

// SameIdentity reports whether e and other are the same entity: both non-nil,
// of the same EntityType, with equal identifiers. No other field is compared.
func SameIdentity(e, other Entity) bool {
	if e == nil || other == nil {
		return false
	}
	if e.EntityType() != other.EntityType() {
		return false
	}
	id := e.EntityID()
	if id == nil {
		return false
	}
	return id.Equals(other.EntityID())
}
