package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors returned by Apply.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidValue is wrapped by every ValidationError.
	ErrInvalidValue = errors.New("invalid value")
)

// Messages returned by the built-in validators.
const (
	MsgOnlyNumAndEn = "may only contain letters and digits"
	MsgNoSpecial    = "must not contain special characters"
	MsgEmail        = "please enter a valid email address"
	MsgPhone        = "please enter a valid phone number"
	MsgHTTP         = "please enter a valid URL"
	MsgCarNumber    = "please enter a valid license plate number"
	MsgIDCard       = "please enter a valid ID number"
	MsgChinese      = "please enter Chinese characters"
	MsgNoChinese    = "must not contain Chinese characters"
	MsgUUID         = "must be a valid UUID"
)
