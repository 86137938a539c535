// Package category provides the Category aggregate of the catalog.
//
// A Category is identified by a kernel.UUID and carries a name, an optional
// description, an active flag and its creation time.
//
// Key business rules:
//   - The name is required and at most 255 characters long
//   - Validation runs on creation and on every change of name or description,
//     and reports every violated rule at once through errs.EntityValidationError
//   - A rejected change leaves the category untouched
//   - Two categories are the same category when their identifiers are equal
package category
