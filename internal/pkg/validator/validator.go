package validator

// Validator checks incoming API requests before they reach the use case.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}
