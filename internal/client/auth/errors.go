package auth

import "errors"

// ErrMissingResetToken is returned by ResetPassword when the reset token is
// empty; no network call is issued.
var ErrMissingResetToken = errors.New("password reset token is missing, please use the link from your email")
