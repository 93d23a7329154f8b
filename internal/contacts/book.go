package contacts

import (
	"strings"
	"time"
)

// UpcomingDays is how far ahead UpcomingBirthdays looks, inclusive.
const UpcomingDays = 7

// AddressBook maps contact names to Records. Iteration follows insertion
// order; overwriting an existing name keeps that name's original position.
// The zero value is an empty book ready to use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// UpcomingBirthday is one result row of UpcomingBirthdays.
type UpcomingBirthday struct {
	Name     string
	Birthday string
}

// AddRecord creates a Record from name and phone and stores it under
// name, silently replacing any Record already stored there.
func (b *AddressBook) AddRecord(name, phone string) error {
	r, err := NewRecord(name, phone)
	if err != nil {
		return err
	}
	b.Add(r)
	return nil
}

// Add stores r under its own name, replacing any previous Record.
func (b *AddressBook) Add(r *Record) {
	if b.records == nil {
		b.records = make(map[string]*Record)
	}
	key := r.name.value
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes name from the book. Unknown names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *AddressBook) Len() int { return len(b.order) }

// Records returns the Records in iteration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays lists contacts whose birthday, moved into today's
// year, falls within [today, today+7 days]. The comparison is a flat date
// comparison: a birthday early next January is not found from late
// December.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	end := start.AddDate(0, 0, UpcomingDays)

	var upcoming []UpcomingBirthday
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		date := bd.In(start.Year(), start.Location())
		if date.Before(start) || date.After(end) {
			continue
		}
		upcoming = append(upcoming, UpcomingBirthday{Name: r.name.value, Birthday: bd.value})
	}
	return upcoming
}

func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
