package httperr

import "errors"

// BusinessError is an expected failure identified by a stable code. Two
// values with the same code compare equal, so they work as sentinels with
// errors.Is.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return Code(err) == code && code != ""
}

// Code returns the business code carried by err, or "" when there is none.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
