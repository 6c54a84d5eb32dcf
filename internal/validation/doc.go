// Package validation holds the input rules shared by every DevLearn form.
//
// The same rule table backs submit-time checks (the form Validate methods)
// and per-field checks on blur (ValidateField), so a field can never pass
// one and fail the other. Validators never mutate state; failures are
// collected into an *Errors keyed by field identifier.
package validation
