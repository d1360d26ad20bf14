// Package validator provides form-field validators and a small aggregation layer
// for reporting several field failures at once.
//
// A validator is a Func: it takes the raw field value and returns an empty
// string when the value is valid, or a human-readable message otherwise.
// Callers check for a non-empty result; validators never panic and never return
// errors.
//
//	if msg := validator.Email(input); msg != "" {
//	    // show msg next to the field
//	}
//
// Built-in validators cover character classes (OnlyNumAndEn, NoSpecial,
// Chinese, NoChinese), common formats (Email, Phone, HTTP, CarNumber, UUID),
// resident ID numbers (IDCard) and length bounds (Length). IsNull, IsEmpty and
// IsInteger are plain predicates for loosely typed input.
//
// # Aggregation
//
// Check binds a Func to a field name and produces a Rule. Apply evaluates rules
// and collects failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.Check("email", form.Email, validator.Email),
//	    validator.Check("name", form.Name, validator.Length(2, 20, "name", true)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// Validate is the single-value shortcut returning the first failure.
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed and every ValidationError wraps
// ErrInvalidValue, so both can be detected with errors.Is.
//
// The package keeps no state; everything is safe for concurrent use.
package validator
