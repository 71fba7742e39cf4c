package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bagtoad/imgaug/internal/augment"
	"github.com/bagtoad/imgaug/internal/batch"
	"github.com/bagtoad/imgaug/internal/imageio"
	"github.com/bagtoad/imgaug/internal/manifest"
	"github.com/bagtoad/imgaug/internal/output"
	"github.com/bagtoad/imgaug/internal/report"
	"github.com/bagtoad/imgaug/internal/scanner"
	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// logLevelEnv overrides the default of --log-level.
const logLevelEnv = "IMGAUG_LOG_LEVEL"

type options struct {
	dryRun      bool
	workers     int
	seed        uint64
	quality     int
	logLevel    string
	noManifest  bool
	seedChanged bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "imgaug <input-dir> <output-dir>",
		Short: "Generate augmented training variants of every image in a directory",
		Long: `imgaug expands each image in a directory into 20 synthetic training
variants: 10 color/brightness/contrast/sharpness jitters, 2 Gaussian
noise variants and 8 directional brightness gradients.

Each original name.ext is copied to the output directory and its variants
are written as name_au0.jpg ... name_au19.jpg. Images whose base name ends
in "_0" are copied but not augmented.`,
		Args: cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			if !cmd.Flags().Changed("log-level") {
				if v := os.Getenv(logLevelEnv); v != "" {
					opts.logLevel = v
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedChanged = cmd.Flags().Changed("seed")
			return run(cmd.Context(), args[0], args[1], opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be done without writing files")
	rootCmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of images processed in parallel")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for reproducible output (default: random)")
	rootCmd.Flags().IntVar(&opts.quality, "quality", imageio.DefaultQuality, "JPEG quality of generated variants (1-100)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&opts.noManifest, "no-manifest", false, "Do not write "+manifest.FileName)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, inDir, outDir string, opts options) error {
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}

	if opts.quality < 1 || opts.quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", opts.quality)
	}

	seed := opts.seed
	if !opts.seedChanged {
		seed = rand.Uint64()
	}

	// Scan directory
	fmt.Printf("Scanning %s...\n", inDir)
	scanResult, err := scanner.Scan(inDir)
	if err != nil {
		return err
	}

	w := &output.Writer{Dir: outDir, Quality: opts.quality, DryRun: opts.dryRun}
	if w.Overlaps(inDir) {
		for _, path := range scanResult.ExcludeGenerated() {
			logger.Warn("Skipping previous variant", "path", path)
		}
		if len(scanResult.ImagePaths) == 0 {
			return fmt.Errorf("no source images found in %s", inDir)
		}
	}
	fmt.Printf("Found %d images (%d non-image files, %d previous variants skipped)\n",
		len(scanResult.ImagePaths), scanResult.SkippedCount, scanResult.GeneratedCount)

	if err := w.Prepare(); err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Println("Dry run mode — no files will be written")
	}

	logger.Info("Augmenting images", "images", len(scanResult.ImagePaths), "workers", opts.workers, "seed", seed)
	results, err := batch.Run(ctx, scanResult.ImagePaths, w, batch.Options{
		Workers: opts.workers,
		Seed:    seed,
		Config:  augment.DefaultConfig(),
		Logger:  logger,
		Progress: func(current, total int) {
			fmt.Printf("\rProcessing image %d/%d...", current, total)
		},
	})
	fmt.Println() // newline after progress
	if err != nil {
		return fmt.Errorf("augmentation interrupted: %w", err)
	}

	if !opts.dryRun && !opts.noManifest {
		path := filepath.Join(outDir, manifest.FileName)
		if err := manifest.Save(manifest.Build(seed, results), path); err != nil {
			return err
		}
		logger.Info("Wrote manifest", "path", path)
	}

	report.Print(os.Stdout, results, scanResult.SkippedCount, scanResult.GeneratedCount, opts.dryRun)

	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
