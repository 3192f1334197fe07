package cli

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the local answer corpus",
	Long:  `Commands for inspecting and extending the corpus of answer documents.`,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus documents",
	RunE:  runCorpusList,
}

var corpusAddCmd = &cobra.Command{
	Use:   "add [name] [file]",
	Short: "Add a document to the corpus",
	Long: `Reads the given text file and stores it in the corpus under the
given name. The name is sanitized the same way persisted answers are.`,
	Args: cobra.ExactArgs(2),
	RunE: runCorpusAdd,
}

func init() {
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusAddCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	corpus, err := corpusStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing corpus: %w", err)
	}

	if len(corpus) == 0 {
		cmd.Println("Corpus is empty.")
		return nil
	}

	for _, doc := range corpus {
		cmd.Printf("  %s (%d chars)\n", doc.Name, utf8.RuneCountInString(doc.Body))
	}
	cmd.Printf("%d documents\n", len(corpus))
	return nil
}

func runCorpusAdd(cmd *cobra.Command, args []string) error {
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	name, path := args[0], args[1]
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := corpusStore.Write(cmd.Context(), name, string(body)); err != nil {
		return fmt.Errorf("storing document: %w", err)
	}

	cmd.Printf("Added %s\n", name)
	return nil
}
