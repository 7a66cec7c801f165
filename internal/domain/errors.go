package domain

import "errors"

var ErrUnknownValue = errors.New("unknown value")
