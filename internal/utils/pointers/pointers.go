package pointers

// To returns a pointer to a copy of v. Handy for optional request fields
// typed with a defined type, e.g. pointers.To(strfmt.Base64(args)).
func To[T any](v T) *T {
	return &v
}
