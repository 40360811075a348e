package profile

import "errors"

// ErrInvalidProfile is returned when a profile field fails validation
var ErrInvalidProfile = errors.New("invalid profile")
