package bot

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/assistant-bot/internal/utils/response"
)

// handlerFunc runs a command whose argument count has already been
// checked and returns the text to print.
type handlerFunc func(args []string) string

// command is one row of the dispatch table.
type command struct {
	usage    string
	args     int
	run      handlerFunc
	terminal bool
}

// commandTable maps each command name to its handler. Handlers close over
// b, the same factory pattern an HTTP router uses to inject storage into
// handler funcs.
//
// add-birthday, show-birthday and birthdays go through withKindErrors;
// add, change and phone report a missing contact themselves and show any
// other failure as a generic error.
func (b *Bot) commandTable() map[string]command {
	return map[string]command{
		"hello":         {usage: "hello", run: b.hello},
		"add":           {usage: "add name phone", args: 2, run: b.add},
		"change":        {usage: "change name old_phone new_phone", args: 3, run: b.change},
		"phone":         {usage: "phone name", args: 1, run: b.phone},
		"all":           {usage: "all", run: b.all},
		"add-birthday":  {usage: "add-birthday name birthday", args: 2, run: withKindErrors(b.addBirthday)},
		"show-birthday": {usage: "show-birthday name", args: 1, run: withKindErrors(b.showBirthday)},
		"birthdays":     {usage: "birthdays", run: withKindErrors(b.birthdays)},
		"close":         {usage: "close", terminal: true},
		"exit":          {usage: "exit", terminal: true},
	}
}

// withKindErrors adapts a fallible handler: errors are printed tagged with
// their kind ("ValueError: ...") instead of propagating.
func withKindErrors(h func(args []string) (string, error)) handlerFunc {
	return func(args []string) string {
		out, err := h(args)
		if err != nil {
			return response.KindError(err)
		}
		return out
	}
}

func (b *Bot) hello(_ []string) string {
	return "How can I help you?"
}

func (b *Bot) add(args []string) string {
	if err := b.book.AddRecord(args[0], args[1]); err != nil {
		return response.GeneralError(err)
	}
	return "Contact added."
}

func (b *Bot) change(args []string) string {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := b.book.Find(name)
	if !ok {
		return response.ContactNotFound
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return response.GeneralError(err)
	}
	return "Phone changed."
}

func (b *Bot) phone(args []string) string {
	record, ok := b.book.Find(args[0])
	if !ok {
		return response.ContactNotFound
	}
	return record.String()
}

func (b *Bot) all(_ []string) string {
	return b.book.String()
}

func (b *Bot) addBirthday(args []string) (string, error) {
	name, birthday := args[0], args[1]

	record, ok := b.book.Find(name)
	if !ok {
		return response.ContactNotFound, nil
	}
	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (b *Bot) showBirthday(args []string) (string, error) {
	record, ok := b.book.Find(args[0])
	if !ok {
		return "Birthday not set.", nil
	}
	birthday, ok := record.Birthday()
	if !ok {
		return "Birthday not set.", nil
	}
	return birthday.Value(), nil
}

func (b *Bot) birthdays(_ []string) (string, error) {
	upcoming := b.book.UpcomingBirthdays(b.now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}

	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("Name: %s, Birthday: %s", u.Name, u.Birthday)
	}
	return strings.Join(lines, "\n"), nil
}
