package validators

import (
	"errors"
	"regexp"
)

var (
	ErrUsernameEmpty  = errors.New("no username provided")
	ErrUsernameLength = errors.New("username must be between 3 and 50 characters long")
	ErrPhoneInvalid   = errors.New("phone number must be + followed by 12 digits")
	ErrCodeInvalid    = errors.New("verification code must be exactly 6 characters long")
)

// phone numbers are E.164-ish: a plus sign and exactly 12 digits
var phoneRegexp = regexp.MustCompile(`^\+\d{12}$`)

func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	if len(u) < 3 || len(u) > 50 {
		return ErrUsernameLength
	}

	return nil
}

func PhoneValidator(p string) error {
	if !phoneRegexp.MatchString(p) {
		return ErrPhoneInvalid
	}

	return nil
}

func CodeValidator(c string) error {
	if len(c) != 6 {
		return ErrCodeInvalid
	}

	return nil
}
