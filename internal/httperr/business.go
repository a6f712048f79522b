package httperr

import "errors"

// Business error codes surfaced by the core operations. Handlers map them to
// HTTP statuses; everything else is a storage failure.
const (
	CodeValidation   = "validation"
	CodeSlotConflict = "slot_conflict"
	CodeNotFound     = "not_found"
	CodeInvalidState = "invalid_state"
	CodeBlocked      = "blocked"
)

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
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsSlotConflict(err error) bool { return IsBusiness(err, CodeSlotConflict) }
func IsNotFound(err error) bool     { return IsBusiness(err, CodeNotFound) }
func IsInvalidState(err error) bool { return IsBusiness(err, CodeInvalidState) }
func IsValidation(err error) bool   { return IsBusiness(err, CodeValidation) }
func IsBlocked(err error) bool      { return IsBusiness(err, CodeBlocked) }
