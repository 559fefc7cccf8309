package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/homonym-flow/internal/config"
	"github.com/nguyentantai21042004/homonym-flow/internal/logger"
)

const usage = `Usage: pipeline [-config path] <command> [args]

Commands:
  watch              monitor the input folder (default)
  fix [-normalize] [file]
                     correct a file, or stdin, and print the result
  batch <dir>        process every transcript in dir once
  rules              list the homonym rules and lint warnings
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command, args := "watch", flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// fix writes the corrected text to stdout, so keep logs off it
	logOut := os.Stdout
	if command == "fix" {
		logOut = os.Stderr
	}
	log := logger.NewWithWriter(logOut, cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch command {
	case "watch":
		err = runWatch(ctx, cfg, log)
	case "fix":
		err = runFix(ctx, cfg, log, args)
	case "batch":
		err = runBatch(ctx, cfg, log, args)
	case "rules":
		err = runRules(cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error(ctx, "%s failed: %v", command, err)
		os.Exit(1)
	}
}

func logBanner(ctx context.Context, log logger.Logger, cfg *config.Config) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Homonym Correction Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
