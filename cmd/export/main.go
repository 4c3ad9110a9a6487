// Command export prints the saved captions held in the configured storage
// slot, optionally filtered, as JSON or as copy-ready text.
//
// Flags:
//
//	--format  json | text (default: json)
//	--search  case-insensitive text/hashtag filter
//	--style   style filter (default: all)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/app"
	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/domain"
	"github.com/heartmarshall/captionkit-backend/internal/service/saved"
)

func main() {
	format := flag.String("format", "json", "output format: json or text")
	search := flag.String("search", "", "case-insensitive filter on text and hashtags")
	style := flag.String("style", domain.StyleFilterAll, "style filter")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, slog.String("cmd", "export"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	store := saved.NewService(logger, storage.Slot, cfg.Storage.SlotKey)
	store.Load(ctx)

	items, total := store.Filter(domain.SavedFilter{Search: *search, Style: *style})

	if err := write(os.Stdout, *format, items); err != nil {
		logger.Error("export", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export completed",
		slog.Int("exported", len(items)),
		slog.Int("total", total),
	)
}

func write(w io.Writer, format string, items []domain.Caption) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "text":
		for _, c := range items {
			if _, err := fmt.Fprintf(w, "%s\n%s\n\n", c.Text, c.HashtagLine()); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
