// parkour is a side-scrolling platformer: run right across each level,
// pick up items and reach the goal.
//
// Usage:
//
//	parkour                 - Play from level 1
//	parkour --level 2       - Start on the second level
//	parkour check           - Build every configured level and report problems
//
// Flags:
//
//	--debug            - Draw collision boxes and frame stats
//	--watch            - Reload levels/ and prefabs/ when files change
//	--fps <rate>       - Override the tick rate from game.yaml
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/parkour/obj"
	"github.com/milk9111/parkour/prefabs"
	"github.com/milk9111/parkour/system"
)

var (
	flagLevel    int
	flagDebug    bool
	flagWatch    bool
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "parkour",
	Short:         "Hardcore Parkour - a side-scrolling platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runGame,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build every configured level without opening a window",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "1-based level to start on")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collision boxes and frame stats")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels and specs when they change on disk")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = value from game.yaml)")

	rootCmd.AddCommand(checkCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "parkour",
	})
	logger.SetLevel(level)
	return logger, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		spec.FPS = flagFPS
	}

	game, err := NewGame(spec, GameOptions{
		Level:  flagLevel,
		Debug:  flagDebug,
		Watch:  flagWatch,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetTPS(spec.FPS)
	ebiten.SetWindowSize(spec.Viewport[0], spec.Viewport[1])
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting", "levels", len(spec.Levels), "level", flagLevel, "fps", spec.FPS)
	return ebiten.RunGame(game)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	kinds, err := obj.LoadKinds()
	if err != nil {
		return err
	}

	world := system.NewWorld(system.SearchPathLoader(kinds), spec.Hero.ProbeDistance)
	failed := 0
	for i, name := range spec.Levels {
		if err := world.Load(name); err != nil {
			logger.Error("level broken", "index", i+1, "error", err)
			failed++
			continue
		}
		lvl := world.Level
		logger.Info("level ok",
			"index", i+1,
			"file", name,
			"name", lvl.Name,
			"size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			"solids", len(lvl.Solids()),
			"items", len(lvl.Items),
			"goal", lvl.Goal.Kind,
		)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed to build", failed, len(spec.Levels))
	}
	return nil
}
