package contacts

import "strings"

// Record is one contact: an immutable name, an ordered list of phones and
// an optional birthday that can be set only once.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with a validated name and one initial phone.
func NewRecord(name, phone string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	r := &Record{name: n}
	if err := r.AddPhone(phone); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRecord rebuilds a Record from persisted values. Unlike NewRecord
// it accepts zero phones, since phones can be removed after creation.
func RestoreRecord(name string, phones []string, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	r := &Record{name: n}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if birthday != "" {
		if err := r.AddBirthday(birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates phone and appends it. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to phone. Absent phones are ignored.
func (r *Record) RemovePhone(phone string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != phone {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldPhone with newPhone.
// Nothing happens when oldPhone is not on the record; newPhone is still
// validated first.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == oldPhone {
			r.phones[i] = p
			break
		}
	}
	return nil
}

// FindPhone returns the first phone equal to phone.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == phone {
			return p, true
		}
	}
	return Phone{}, false
}

// AddBirthday sets the birthday. A second call fails with
// "Birthday already exists" and leaves the first value in place.
func (r *Record) AddBirthday(value string) error {
	if r.birthday != nil {
		return Validationf(MsgBirthdayExists)
	}
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return "Contact name: " + r.name.value + ", phones: " + strings.Join(values, "; ")
}
