package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litla-gamaleigan/arcade/internal/platform/tui"
)

var flagPlaces bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the foreman anything",
	Long: `Ask the foreman a free-form question.

Without arguments an interactive Q&A panel opens. With a question as
arguments the answer is printed directly. Use --places to run a
maps-grounded lookup for locations in Iceland instead.

Requires the GEMINI_API_KEY environment variable; without it the
foreman only has his stock phrases.

Examples:
  gamaleiga ask
  gamaleiga ask "Hvernig flokka ég kaffikorg?"
  gamaleiga ask --places "grenndarstöðvar í Kópavogi"`,
	Run: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&flagPlaces, "places", false, "Look up locations in Iceland (maps-grounded)")
}

func runAsk(_ *cobra.Command, args []string) {
	fm := newForeman()

	if !fm.Enabled() {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; the foreman only has his stock phrases.")
	}

	if len(args) == 0 {
		if flagPlaces {
			fmt.Fprintln(os.Stderr, "Error: --places needs a query argument")
			os.Exit(1)
		}
		width, height := terminalSize()
		if err := tui.RunAsk(fm, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	question := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if flagPlaces {
		places := fm.FindPlaces(ctx, question)
		fmt.Println(places.Text)
		for _, link := range places.Links {
			fmt.Printf("  %s\n", link)
		}
		return
	}

	fmt.Println(fm.Ask(ctx, question))
}
