// Command marquee runs the terminal marquee demo: an infinitely scrolling
// band of repeated chips driven by the engine in internal/marquee.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"marquee/cmd/marquee/ui"
	"marquee/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Marquee option flags
	flagMargin   float64
	flagHover    bool
	flagReverse  bool
	flagNoAuto   bool
	flagDelta    float64
	flagEasing   float64
	flagFriction float64
	flagFPS      int
	flagChip     string

	logger *zap.Logger
)

// rootCmd runs the interactive demo.
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Infinitely scrolling terminal marquee",
	Long: `marquee renders an infinitely scrolling horizontal band of repeated
chips. Slides wrap seamlessly at the band edges and accelerate transiently
from scroll input (mouse wheel or arrow keys), relaxing back to their
baseline speed.

With --config, the file is also watched: edits apply to the running band.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"marquee.log"}
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyLogging(cfg.Logging); err != nil {
		return err
	}

	model := ui.New(cfg, logger)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, logger)
		if err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("config watcher: %w", err)
		}
		defer watcher.Stop()

		group.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case reloaded := <-watcher.Reloads():
					program.Send(ui.ReloadMsg{Cfg: reloaded})
				}
			}
		})
	}

	group.Go(func() error {
		defer cancel()
		_, err := program.Run()
		return err
	})

	return group.Wait()
}

// applyLogging rebuilds the logger from the file's logging section. The flag
// logger from PersistentPreRunE stays in place when the section is default;
// --verbose always wins over the file level.
func applyLogging(lc config.LoggingConfig) error {
	out := "marquee.log"
	if lc.File != "" {
		out = lc.File
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{out}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	rebuilt, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	logger = rebuilt
	return nil
}

// loadConfig layers the config file (when given) under the command flags.
// Only flags the user actually set override the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("margin") {
		cfg.Marquee.Margin = flagMargin
	}
	if flags.Changed("hover") {
		cfg.Marquee.Hover = flagHover
	}
	if flags.Changed("reverse") {
		cfg.Marquee.Direction = !flagReverse
	}
	if flags.Changed("no-autoplay") {
		cfg.Marquee.AutoPlay = !flagNoAuto
	}
	if flags.Changed("delta") {
		cfg.Marquee.Delta = flagDelta
	}
	if flags.Changed("easing") {
		cfg.Marquee.Easing = flagEasing
	}
	if flags.Changed("friction") {
		cfg.Marquee.Friction = flagFriction
	}
	if flags.Changed("fps") {
		cfg.UI.FPS = flagFPS
	}
	if flags.Changed("chip") {
		cfg.UI.Chip = flagChip
	}
	if cfg.UI.FPS <= 0 {
		cfg.UI.FPS = 60
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to yaml config (watched for changes)")

	rootCmd.Flags().Float64Var(&flagMargin, "margin", 0, "gap between chips in cells")
	rootCmd.Flags().BoolVar(&flagHover, "hover", false, "animate only while the pointer is over the band")
	rootCmd.Flags().BoolVar(&flagReverse, "reverse", false, "scroll in reverse direction")
	rootCmd.Flags().BoolVar(&flagNoAuto, "no-autoplay", false, "start paused")
	rootCmd.Flags().Float64Var(&flagDelta, "delta", 0, "base speed in cells per frame")
	rootCmd.Flags().Float64Var(&flagEasing, "easing", 0, "position filter stiffness")
	rootCmd.Flags().Float64Var(&flagFriction, "friction", 0, "position filter velocity decay")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "animation frames per second")
	rootCmd.Flags().StringVar(&flagChip, "chip", "", "repeated chip content")

	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
