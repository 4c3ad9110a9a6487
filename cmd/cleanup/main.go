// Command cleanup is an offline maintenance tool for the saved-captions slot.
// A running server prunes expired captions itself (storage.retention_days,
// storage.retention_interval); this command is for when no server is up.
// Every server keeps the whole collection in memory and rewrites the slot on
// its next save, so cleanup refuses to run unless -offline confirms that.
//
// Usage:
//
//	cleanup -offline          # prune captions older than retention_days
//	cleanup -offline -purge   # delete the slot key
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/app"
	"github.com/heartmarshall/captionkit-backend/internal/config"
)

func main() {
	offline := flag.Bool("offline", false, "confirm that no server is using the slot")
	purge := flag.Bool("purge", false, "delete the whole slot key instead of pruning")
	flag.Parse()

	if !*offline {
		fmt.Fprintln(os.Stderr, "cleanup: a running server prunes on its own; stop it and pass -offline to run this")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, slog.String("cmd", "cleanup"))

	if cfg.Storage.RetentionDays == 0 && !*purge {
		logger.Info("retention disabled, nothing to do")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	res, err := app.Cleanup(ctx, cfg.Storage, logger, storage.Slot, *purge)
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		storage.Close()
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Bool("purged", res.Purged),
		slog.Int("removed", res.Removed),
		slog.Int("remaining", res.Remaining),
		slog.Int("retention_days", cfg.Storage.RetentionDays),
	)
}
