// Package utils holds small helpers shared by tests.
package utils

// Ptr returns a pointer to v. Useful for literal optional fields in tests.
func Ptr[T any](v T) *T {
	return &v
}
