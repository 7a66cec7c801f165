package admin

import "errors"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrSubcategoryMismatch = errors.New("subcategory does not belong to category")
)

// MsgMissingFields is shown when a form is submitted with empty fields.
const MsgMissingFields = "Please fill in all fields"
