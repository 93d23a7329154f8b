// Package response turns command results and errors into the exact
// strings the bot prints.
//
// Every command ends in one or more lines of plain text on the console.
// Rather than formatting error prefixes in every handler, we centralise
// them here so the output shape stays the same across commands.
package response

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/assistant-bot/internal/contacts"
)

// Fixed messages shared by several commands.
const (
	ContactNotFound = "Contact not found."
	InvalidCommand  = "Invalid command."
)

// Error prefixes, one per contacts.Kind plus a catch-all. They keep the
// output compatible with earlier versions of the bot.
const (
	prefixValidation = "ValueError"
	prefixLookup     = "KeyError"
	prefixUsage      = "IndexError"
	prefixGeneral    = "An error occurred"
)

// ─────────────────────────────────────────────────────────────────────────────
// WriteLine writes msg followed by a newline.
//
// Output errors are returned so the caller can stop the loop when the
// console has gone away.
// ─────────────────────────────────────────────────────────────────────────────
func WriteLine(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// GeneralError renders an error that is not translated by kind.
//
//	An error occurred: Invalid phone number format
//
// ─────────────────────────────────────────────────────────────────────────────
func GeneralError(err error) string {
	return prefixGeneral + ": " + err.Error()
}

// ─────────────────────────────────────────────────────────────────────────────
// KindError renders err tagged with its contacts.Kind:
//
//	ValueError: Birthday already exists
//	KeyError: <message>
//	IndexError: <message>
//
// Errors that carry no Kind fall back to GeneralError.
// ─────────────────────────────────────────────────────────────────────────────
func KindError(err error) string {
	switch contacts.KindOf(err) {
	case contacts.KindValidation:
		return prefixValidation + ": " + err.Error()
	case contacts.KindLookup:
		return prefixLookup + ": " + err.Error()
	case contacts.KindUsage:
		return prefixUsage + ": " + err.Error()
	default:
		return GeneralError(err)
	}
}

// Usage renders the argument-count message for a command.
func Usage(usage string) string {
	return fmt.Sprintf("Invalid input format. Use '%s'.", usage)
}
