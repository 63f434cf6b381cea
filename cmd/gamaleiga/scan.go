package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litla-gamaleigan/arcade/internal/foreman"
	"github.com/litla-gamaleigan/arcade/internal/storage"
)

var flagEditPrompt string

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Have the foreman classify a photographed item",
	Long: `Send a photo to the foreman. He names the item and tells you which
bin it belongs in (Plast, Pappi, Matur or Almennt).

With --edit the photo is restyled by the given prompt instead; the
edited image is written next to the original and the edit is logged
in the database.

Requires the GEMINI_API_KEY environment variable.

Examples:
  gamaleiga scan ./rusl.jpg
  gamaleiga scan ./portrett.jpg --edit "setja mig í vinnuvesti og hjálm"`,
	Args: cobra.ExactArgs(1),
	Run:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagEditPrompt, "edit", "", "Restyle the photo with this prompt instead of classifying it")
}

func runScan(_ *cobra.Command, args []string) {
	imagePath := args[0]

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
		os.Exit(1)
	}
	encoded := base64.StdEncoding.EncodeToString(data)

	fm := newForeman()
	if !fm.Enabled() {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY not set; the foreman cannot see your photo.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if flagEditPrompt != "" {
		runEdit(ctx, fm, imagePath, encoded)
		return
	}

	result := fm.ClassifyTrash(ctx, encoded)
	fmt.Printf("Hlutur:   %s\n", result.Item)
	fmt.Printf("Tunna:    %s\n", result.Bin)
	if result.Reason != "" {
		fmt.Printf("Ástæða:   %s\n", result.Reason)
	}
}

// runEdit restyles the photo, writes the result next to the original and
// logs the edit.
func runEdit(ctx context.Context, fm *foreman.Client, imagePath, encoded string) {
	edited, err := fm.EditImage(ctx, encoded, flagEditPrompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing image: %v\n", err)
		os.Exit(1)
	}

	decoded, err := base64.StdEncoding.DecodeString(edited)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding edited image: %v\n", err)
		os.Exit(1)
	}

	ext := filepath.Ext(imagePath)
	outPath := strings.TrimSuffix(imagePath, ext) + "_edit" + ext
	if err := os.WriteFile(outPath, decoded, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing edited image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Edited image written to %s\n", outPath)

	if store, storeErr := storage.Open(flagDBPath); storeErr == nil {
		//nolint:errcheck // Best-effort log, the image is already on disk
		store.SaveEdit(flagEditPrompt, outPath)
		store.Close()
	}
}
