package contacts

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the display layer can tag it without
// inspecting message text.
type Kind int

const (
	// KindValidation — bad name, phone or birthday format, duplicate birthday.
	KindValidation Kind = iota + 1
	// KindLookup — a contact name that is not in the book.
	KindLookup
	// KindUsage — wrong number of command arguments.
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindLookup:
		return "lookup"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Error is the only error type the contacts package returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the Kind carried by err, or 0 if err is not (and does not
// wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Messages shared between validators and tests.
const (
	MsgEmptyName       = "Name cannot be empty"
	MsgInvalidPhone    = "Invalid phone number format"
	MsgInvalidBirthday = "Invalid date format. Use " + BirthdayLayout
	MsgBirthdayExists  = "Birthday already exists"
)
