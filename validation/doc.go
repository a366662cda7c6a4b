// Package validation provides struct tag validation backed by the
// validator library. Configuration structs declare constraints with
// `validate:"..."` tags and check them through ValidateStruct.
package validation
