package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/archimport/internal/config"
	"github.com/JonMunkholm/archimport/internal/core"
	"github.com/JonMunkholm/archimport/internal/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists; variables already set in the environment win
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Import.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Import.Timeout)
		defer cancel()
	}

	ctx = logging.WithImportID(ctx, uuid.New().String())
	log := logging.FromContext(ctx)

	// Connect to database
	conn, err := pgx.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		logFailure(log, "failed to connect to database", err)
		return 1
	}
	defer conn.Close(context.Background())

	log.Info("connected to database", "name", conn.Config().Database, "host", conn.Config().Host)

	importer := core.NewImporter(conn, core.ImportConfig{
		Year:          cfg.Import.Year,
		Table:         cfg.Import.Table,
		MissingMarker: cfg.Import.MissingMarker,
	})

	result, err := importer.ImportFile(ctx, cfg.Import.File)
	if err != nil {
		logFailure(log, "import failed, nothing was committed", err, "file", cfg.Import.File)
		return 1
	}

	fmt.Printf("Zaimportowano %d rekordów do %s.\n", result.Inserted, cfg.Import.Table)
	return 0
}

// logFailure logs err together with its support code and suggested action.
func logFailure(log *slog.Logger, msg string, err error, args ...any) {
	uerr := core.NewUserError(err)
	args = append(args,
		"error", uerr.Technical,
		"code", uerr.User.Code,
		"hint", uerr.Hint(),
	)
	log.Error(msg, args...)
}
