package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litla-gamaleigan/arcade/internal/audio"
	"github.com/litla-gamaleigan/arcade/internal/core"
	"github.com/litla-gamaleigan/arcade/internal/games/garbage"
	"github.com/litla-gamaleigan/arcade/internal/games/hook"
	"github.com/litla-gamaleigan/arcade/internal/games/sand"
	"github.com/litla-gamaleigan/arcade/internal/games/snowplow"
	"github.com/litla-gamaleigan/arcade/internal/platform/tui"
	"github.com/litla-gamaleigan/arcade/internal/registry"
	"github.com/litla-gamaleigan/arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move
  Space       - Act (grab, dig, dump)
  1-4         - Select bin (garbage sorting)
  X           - Release
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower spawns and gentler shift quotas
  normal - Default progression
  hard   - Faster spawns and tighter quotas
  fixed  - No progression, stays at the first shift's parameters

Examples:
  gamaleiga play garbage
  gamaleiga play hook --difficulty easy
  gamaleiga play snowplow --difficulty hard
  gamaleiga play sand --config ./my-sand.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// applyGameTuning wires the config path and difficulty preset into the
// selected game's package before the game instance is created.
func applyGameTuning(gameID string) {
	switch gameID {
	case "garbage":
		garbage.SetConfigPath(flagConfig)
		garbage.SetDifficultyPreset(flagDifficulty)
	case "hook":
		hook.SetConfigPath(flagConfig)
		hook.SetDifficultyPreset(flagDifficulty)
	case "snowplow":
		snowplow.SetConfigPath(flagConfig)
		snowplow.SetDifficultyPreset(flagDifficulty)
	case "sand":
		sand.SetConfigPath(flagConfig)
		sand.SetDifficultyPreset(flagDifficulty)
	}
}

// terminalSize reports the current terminal dimensions, with fallbacks
// for non-terminal stdout.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gamaleiga list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameTuning(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Wire sound; the game stays playable without it.
	var notifier *audio.Notifier
	if !flagMute {
		notifier = audio.NewNotifier()
		if initErr := notifier.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", initErr)
		}
		game.SetNotifier(notifier)
		defer notifier.Close()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, newForeman(), cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
