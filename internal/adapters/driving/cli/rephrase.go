package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rephraseCmd = &cobra.Command{
	Use:   "rephrase [text]",
	Short: "Paraphrase a piece of text",
	Long: `Sends the given text to the configured paraphrase endpoint and
prints the rephrased version.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRephrase,
}

func init() {
	rootCmd.AddCommand(rephraseCmd)
}

func runRephrase(cmd *cobra.Command, args []string) error {
	if paraphraser == nil {
		return errors.New("paraphrase endpoint not configured")
	}

	text := strings.Join(args, " ")
	rephrased, err := paraphraser.Rephrase(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("rephrasing failed: %w", err)
	}

	cmd.Println(rephrased)
	return nil
}
