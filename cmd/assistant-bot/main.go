// main is the entry point of the assistant bot.
//
// STARTUP SEQUENCE:
//  1. Parse the command line (only --config) with kong
//  2. Load configuration: defaults, optional YAML file, environment
//  3. Initialise the logger (stderr — stdout is the conversation)
//  4. Open the storage backend and load the address book
//  5. Run the prompt loop until close/exit, end of input or a signal
//  6. Release the storage handle
//
// RUNNING:
//
//	go run ./cmd/assistant-bot --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/assistant-bot
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/aanand-mishra/assistant-bot/internal/bot"
	"github.com/aanand-mishra/assistant-bot/internal/config"
	"github.com/aanand-mishra/assistant-bot/internal/storage"
	"github.com/aanand-mishra/assistant-bot/internal/storage/sqlite"
	"github.com/aanand-mishra/assistant-bot/internal/storage/yamlfile"
)

// CLI is the whole command line. Everything else lives in the config file.
type CLI struct {
	Config string `help:"Path to the configuration YAML file." env:"CONFIG_PATH" placeholder:"PATH"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("assistant-bot"),
		kong.Description("Console contact book with birthday reminders."),
	)

	cfg := config.MustLoad(cli.Config)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting assistant-bot",
		slog.String("env", cfg.Env),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	book, err := store.Load()
	if err != nil {
		log.Error("failed to load address book",
			slog.String("path", cfg.StoragePath),
			slog.String("error", err.Error()))
		store.Close()
		os.Exit(1)
	}

	log.Info("address book loaded",
		slog.String("path", cfg.StoragePath),
		slog.Int("contacts", book.Len()))

	// Ctrl+C / SIGTERM end the session the same way "close" does: the
	// book is saved before the loop returns.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bot.New(book, store, os.Stdout, bot.WithLogger(log))
	if err := b.Run(ctx, os.Stdin); err != nil {
		log.Error("session ended with error", slog.String("error", err.Error()))
	}
}

// openStorage picks the backend named by cfg.StorageDriver. Callers see
// only the storage.Storage interface.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverYAML:
		return yamlfile.New(cfg), nil
	default:
		return sqlite.New(cfg)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): JSON at WARN level, so a normal session stays quiet.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "dev":
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "prod" and anything unrecognised
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}),
		)
	}
}
