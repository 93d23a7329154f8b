package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord("Ann", "1234567890")
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	r := newTestRecord(t)
	assert.Equal(t, "Ann", r.Name().Value())
	assert.Equal(t, "Contact name: Ann, phones: 1234567890", r.String())

	_, ok := r.Birthday()
	assert.False(t, ok)

	_, err := NewRecord("", "1234567890")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = NewRecord("Bob", "12")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestRecord_Phones(t *testing.T) {
	r := newTestRecord(t)

	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("1234567890"))
	assert.Equal(t, "Contact name: Ann, phones: 1234567890; 1111111111; 1234567890", r.String())

	assert.Error(t, r.AddPhone("abc"))
	assert.Len(t, r.Phones(), 3)

	p, ok := r.FindPhone("1111111111")
	require.True(t, ok)
	assert.Equal(t, "1111111111", p.Value())
	_, ok = r.FindPhone("0000000000")
	assert.False(t, ok)

	r.RemovePhone("1234567890")
	assert.Equal(t, "Contact name: Ann, phones: 1111111111", r.String())

	r.RemovePhone("0000000000")
	assert.Len(t, r.Phones(), 1)
}

func TestRecord_EditPhone(t *testing.T) {
	r := newTestRecord(t)
	require.NoError(t, r.AddPhone("1234567890"))

	require.NoError(t, r.EditPhone("1234567890", "5555555555"))
	assert.Equal(t, "Contact name: Ann, phones: 5555555555; 1234567890", r.String())

	require.NoError(t, r.EditPhone("0000000000", "6666666666"))
	assert.Equal(t, "Contact name: Ann, phones: 5555555555; 1234567890", r.String())

	err := r.EditPhone("5555555555", "bad")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Contact name: Ann, phones: 5555555555; 1234567890", r.String())
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	r := newTestRecord(t)
	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}
	assert.Equal(t, "1234567890", r.Phones()[0].Value())
}

func TestRecord_AddBirthdayTwice(t *testing.T) {
	r := newTestRecord(t)

	require.NoError(t, r.AddBirthday("15.03.1990"))
	err := r.AddBirthday("16.03.1990")
	require.Error(t, err)
	assert.Equal(t, "Birthday already exists", err.Error())
	assert.Equal(t, KindValidation, KindOf(err))

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.03.1990", b.Value())
}

func TestRecord_InvalidBirthdayLeavesItUnset(t *testing.T) {
	r := newTestRecord(t)
	require.Error(t, r.AddBirthday("31.02.2024"))
	_, ok := r.Birthday()
	assert.False(t, ok)
	require.NoError(t, r.AddBirthday("01.01.2000"))
}

func TestRestoreRecord(t *testing.T) {
	r, err := RestoreRecord("Ann", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Contact name: Ann, phones: ", r.String())

	r, err = RestoreRecord("Ann", []string{"1234567890", "1111111111"}, "01.01.2000")
	require.NoError(t, err)
	assert.Len(t, r.Phones(), 2)
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.01.2000", b.Value())

	_, err = RestoreRecord("Ann", []string{"1"}, "")
	assert.Error(t, err)
}
