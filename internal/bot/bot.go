// Package bot is the assistant's command dispatcher.
//
// A Bot owns the single AddressBook for the lifetime of a session. Each
// input line is parsed into a command and its arguments, routed through
// the command table (commands.go) and the result printed. The loop ends on
// "close"/"exit", at end of input, or when the context is cancelled; in
// every case the book is saved through the storage.Storage adapter first.
//
//	book, _ := store.Load()
//	b := bot.New(book, store, os.Stdout)
//	err := b.Run(ctx, os.Stdin)
package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aanand-mishra/assistant-bot/internal/contacts"
	"github.com/aanand-mishra/assistant-bot/internal/storage"
	"github.com/aanand-mishra/assistant-bot/internal/utils/response"
)

const (
	Prompt   = "Enter a command: "
	Welcome  = "Welcome to the assistant bot!"
	Farewell = "Good bye!"
)

// Bot dispatches commands against one AddressBook.
type Bot struct {
	book     *contacts.AddressBook
	store    storage.Storage
	out      io.Writer
	log      *slog.Logger
	now      func() time.Time
	commands map[string]command
}

// Option configures a Bot.
type Option func(*Bot)

// WithClock replaces time.Now as the source of "today" for upcoming
// birthdays.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) { b.now = now }
}

// WithLogger sets the logger for diagnostics. Console output never goes
// through it.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bot) { b.log = log }
}

// New returns a Bot that mutates book, saves it to store on shutdown and
// prints to out.
func New(book *contacts.AddressBook, store storage.Storage, out io.Writer, opts ...Option) *Bot {
	b := &Bot{
		book:  book,
		store: store,
		out:   out,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.commands = b.commandTable()
	return b
}

// Book returns the book the Bot operates on.
func (b *Bot) Book() *contacts.AddressBook { return b.book }

// ParseInput splits line on whitespace. The command is lower-cased; an
// empty line yields an empty command.
func ParseInput(line string) (cmd string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run greets the user and loops prompt → read → dispatch until a
// terminating command, end of input, or ctx cancellation. The book is
// saved before Run returns in all three cases.
//
// Lines are read on a separate goroutine so a cancelled ctx does not wait
// for the next line; dispatch itself only ever runs on the caller's
// goroutine.
func (b *Bot) Run(ctx context.Context, in io.Reader) error {
	if err := response.WriteLine(b.out, Welcome); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if _, err := fmt.Fprint(b.out, Prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			b.log.Info("context cancelled, saving address book")
			if err := response.WriteLine(b.out, ""); err != nil {
				return err
			}
			return b.shutdown()

		case err := <-readErr:
			if err != nil {
				b.log.Error("reading input", slog.String("error", err.Error()))
			}
			b.log.Info("end of input, saving address book")
			if werr := response.WriteLine(b.out, ""); werr != nil {
				return werr
			}
			if serr := b.shutdown(); serr != nil {
				return serr
			}
			return err

		case line := <-lines:
			stop, err := b.Dispatch(line)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
	}
}

// Dispatch runs one input line and prints its result. stop reports that
// the line was a terminating command. A non-nil error means output or
// persistence failed; command-level failures are printed, not returned.
func (b *Bot) Dispatch(line string) (stop bool, err error) {
	name, args := ParseInput(line)
	if name == "" {
		return false, nil
	}

	cmd, ok := b.commands[name]
	if !ok {
		b.log.Debug("unknown command", slog.String("command", name))
		return false, response.WriteLine(b.out, response.InvalidCommand)
	}

	if len(args) != cmd.args {
		b.log.Debug("wrong argument count",
			slog.String("command", name),
			slog.Int("got", len(args)),
			slog.Int("want", cmd.args))
		return false, response.WriteLine(b.out, response.Usage(cmd.usage))
	}

	b.log.Debug("dispatching command", slog.String("command", name))

	if cmd.terminal {
		return true, b.shutdown()
	}
	return false, response.WriteLine(b.out, cmd.run(args))
}

// shutdown persists the book and prints the farewell. The farewell is
// printed even when saving fails so the session still ends cleanly.
func (b *Bot) shutdown() error {
	saveErr := b.store.Save(b.book)
	if saveErr != nil {
		b.log.Error("failed to save address book", slog.String("error", saveErr.Error()))
		if err := response.WriteLine(b.out, response.GeneralError(saveErr)); err != nil {
			return err
		}
	} else {
		b.log.Info("address book saved", slog.Int("contacts", b.book.Len()))
	}

	if err := response.WriteLine(b.out, Farewell); err != nil {
		return err
	}
	if saveErr != nil {
		return fmt.Errorf("bot.shutdown: save: %w", saveErr)
	}
	return nil
}
