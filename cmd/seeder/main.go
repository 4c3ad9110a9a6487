// Command seeder fills the saved-captions store with demo captions rendered
// by the caption engine. It is intended to be run offline against the
// configured storage slot while no server is running: a live server rewrites
// the slot from its own memory on its next save.
//
// Flags:
//
//	--phase          comma-separated list of phases: reset, captions (default: captions)
//	--dry-run        render captions without writing to storage
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/captionkit-backend/internal/app"
	"github.com/heartmarshall/captionkit-backend/internal/app/seeder"
	"github.com/heartmarshall/captionkit-backend/internal/config"
	"github.com/heartmarshall/captionkit-backend/internal/service/generator"
	"github.com/heartmarshall/captionkit-backend/internal/service/saved"
)

// Compile-time interface assertions.
var (
	_ seeder.CaptionStore = (*saved.Service)(nil)
	_ seeder.Renderer     = (*generator.Engine)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: captions)")
	dryRunFlag := flag.Bool("dry-run", false, "render captions without writing to storage")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for storage).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, slog.String("cmd", "seeder"))

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, appCfg.Storage)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	store := saved.NewService(logger, storage.Slot, appCfg.Storage.SlotKey)
	store.Load(ctx)

	engine := generator.NewEngine(generator.WithRand(rand.New(rand.NewPCG(seederCfg.Seed, seederCfg.Seed))))

	pipeline := seeder.NewPipeline(logger, store, engine, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
