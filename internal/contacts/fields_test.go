package contacts

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewName(t *testing.T) {
	n, err := NewName("Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", n.Value())

	_, err = NewName("")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, MsgEmptyName, err.Error())
}

// ============================================================================
// Property-Based Tests for Phone validation
// ============================================================================

func TestProperty_TenDigitPhonesAreAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.StringMatching(`[0-9]{10}`).Draw(t, "phone")
		got, err := NewPhone(p)
		if err != nil {
			t.Fatalf("NewPhone(%q) = %v, want ok", p, err)
		}
		if got.Value() != p {
			t.Fatalf("Value() = %q, want %q", got.Value(), p)
		}
		if err := ValidatePhones(p, p); err != nil {
			t.Fatalf("ValidatePhones(%q) = %v", p, err)
		}
	})
}

func TestProperty_WrongLengthPhonesAreRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Filter(func(n int) bool { return n != 10 }).Draw(t, "len")
		p := strings.Repeat("1", n)
		if _, err := NewPhone(p); KindOf(err) != KindValidation {
			t.Fatalf("NewPhone(%q) = %v, want validation error", p, err)
		}
	})
}

func TestProperty_NonDigitPhonesAreRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{9}`).Draw(t, "digits")
		bad := rapid.SampledFrom([]string{"a", "-", "+", " ", ".", "x", "٣"}).Draw(t, "bad")
		pos := rapid.IntRange(0, 9).Draw(t, "pos")
		p := digits[:pos] + bad + digits[pos:]
		if _, err := NewPhone(p); KindOf(err) != KindValidation {
			t.Fatalf("NewPhone(%q) = %v, want validation error", p, err)
		}
	})
}

func TestValidatePhones_FailsOnAnyBadCandidate(t *testing.T) {
	err := ValidatePhones("1234567890", "12345")
	require.Error(t, err)
	assert.Equal(t, MsgInvalidPhone, err.Error())
}

// ============================================================================
// Birthday
// ============================================================================

func TestProperty_RealDatesAreAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1, 9999).Draw(t, "year")
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		day := rapid.IntRange(1, last).Draw(t, "day")

		s := fmt.Sprintf("%02d.%02d.%04d", day, int(month), year)
		b, err := NewBirthday(s)
		if err != nil {
			t.Fatalf("NewBirthday(%q) = %v, want ok", s, err)
		}
		if b.Day() != day || b.Month() != month || b.Year() != year {
			t.Fatalf("NewBirthday(%q) parsed %d.%d.%d", s, b.Day(), b.Month(), b.Year())
		}
	})
}

func TestNewBirthday_Invalid(t *testing.T) {
	cases := []string{
		"31.02.2024",
		"29.02.2023",
		"00.01.2000",
		"01.13.2000",
		"01.00.2000",
		"1990-01-01",
		"01.01",
		"01.01.2000.1",
		"aa.bb.cccc",
		"",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			_, err := NewBirthday(c)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", err.Error())
		})
	}
}

func TestNewBirthday_KeepsValueVerbatim(t *testing.T) {
	b, err := NewBirthday("1.2.1990")
	require.NoError(t, err)
	assert.Equal(t, "1.2.1990", b.Value())
	assert.Equal(t, time.February, b.Month())

	leap, err := NewBirthday("29.02.2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), leap.In(2025, time.UTC))
}
