package validation

// Validator checks a struct against its validate tags.
// It returns nil when s is valid, otherwise a message per failing field keyed
// by the field's json name.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
