// Package kernel provides the building blocks every aggregate of the catalog is
// made of.
//
// The package includes:
//   - ValueObject: the contract for immutable values compared by their attributes,
//     with SameValue and SameCanonicalValue as ready-made implementations
//   - UUID: the identifier value object, restricted to version 4 identifiers
//   - Entity and EntityType: the contract for objects compared by identity
//
// Value objects are immutable and safe for concurrent use. Entities are not; the
// repository that holds them serializes access.
package kernel
