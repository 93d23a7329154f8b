// Package contacts holds the contact book's data model: the validated
// field values (Name, Phone, Birthday), the Record that groups them and
// the AddressBook that keys Records by name.
//
// Every constructor validates raw string input before it enters the
// model. Validation rules are expressed as go-playground/validator tags
// so the rules read the same way they would on a request struct:
//
//	name      "required"
//	phone     "len=10,number"   (exactly ten ASCII digits)
//	birthday  "birthday"        (custom tag, DD.MM.YYYY real calendar date)
package contacts

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	nameRule     = "required"
	phoneRule    = "len=10,number"
	birthdayRule = "birthday"
)

// validate is shared by all constructors. A *validator.Validate caches
// parsed tags and is safe for concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails on an empty tag or nil func; both are
	// constants here.
	_ = v.RegisterValidation(birthdayRule, func(fl validator.FieldLevel) bool {
		_, _, _, ok := parseDate(fl.Field().String())
		return ok
	})
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Name
// ─────────────────────────────────────────────────────────────────────────────

// Name identifies a Record and is its key inside an AddressBook.
type Name struct {
	value string
}

// NewName fails with a validation error when value is empty.
func NewName(value string) (Name, error) {
	if err := validate.Var(value, nameRule); err != nil {
		return Name{}, Validationf(MsgEmptyName)
	}
	return Name{value: value}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }

// ─────────────────────────────────────────────────────────────────────────────
// Phone
// ─────────────────────────────────────────────────────────────────────────────

// Phone is a string of exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates a single candidate phone number.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, phoneRule); err != nil {
		return Phone{}, Validationf(MsgInvalidPhone)
	}
	return Phone{value: value}, nil
}

// ValidatePhones fails if any candidate is not a valid phone number.
func ValidatePhones(values ...string) error {
	for _, v := range values {
		if _, err := NewPhone(v); err != nil {
			return err
		}
	}
	return nil
}

func (p Phone) Value() string  { return p.value }
func (p Phone) String() string { return p.value }

// ─────────────────────────────────────────────────────────────────────────────
// Birthday
// ─────────────────────────────────────────────────────────────────────────────

// BirthdayLayout documents the accepted input shape. Single-digit day and
// month components are accepted as well ("1.2.1990").
const BirthdayLayout = "DD.MM.YYYY"

// Birthday is a calendar date. The string the user typed is kept verbatim
// as the stored value; day and month are parsed once for date arithmetic.
type Birthday struct {
	value string
	day   int
	month time.Month
	year  int
}

// NewBirthday parses value as day.month.year and fails unless the three
// numeric components form a real calendar date.
func NewBirthday(value string) (Birthday, error) {
	if err := validate.Var(value, birthdayRule); err != nil {
		return Birthday{}, Validationf(MsgInvalidBirthday)
	}
	d, m, y, _ := parseDate(value)
	return Birthday{value: value, day: d, month: m, year: y}, nil
}

func (b Birthday) Value() string  { return b.value }
func (b Birthday) String() string { return b.value }

// Day, Month and Year expose the parsed components.
func (b Birthday) Day() int          { return b.day }
func (b Birthday) Month() time.Month { return b.month }
func (b Birthday) Year() int         { return b.year }

// In returns the birthday's date in the given year, at midnight in loc.
// Feb 29 in a non-leap year normalizes to Mar 1.
func (b Birthday) In(year int, loc *time.Location) time.Time {
	return time.Date(year, b.month, b.day, 0, 0, 0, 0, loc)
}

// parseDate splits s into day, month and year and reports whether they
// form a real date in years 1..9999.
func parseDate(s string) (day int, month time.Month, year int, ok bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}

	day, month, year = nums[0], time.Month(nums[1]), nums[2]
	if year < 1 || year > 9999 || month < time.January || month > time.December || day < 1 {
		return 0, 0, 0, false
	}

	// time.Date normalizes overflow (31.02 → 02.03); a round trip that
	// changes the components means the date does not exist.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return 0, 0, 0, false
	}
	return day, month, year, true
}
