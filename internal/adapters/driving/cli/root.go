// Package cli is the cobra command surface for marai.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ryukaizen/marai/internal/core/ports/driven"
	"github.com/ryukaizen/marai/internal/core/ports/driving"
	"github.com/ryukaizen/marai/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	answerService driving.AnswerService
	corpusStore   driven.CorpusStore
	paraphraser   driven.Paraphraser
)

var (
	verbose    bool
	configPath string
)

// bootstrap is called once flags are parsed, before any command runs. main
// uses it to load config and wire the services.
var bootstrap func(configPath string) error

var rootCmd = &cobra.Command{
	Use:   "marai",
	Short: "Marathi question answering over a local text corpus",
	Long: `Marai answers Marathi questions from a local corpus of text documents.

Questions the corpus cannot answer are looked up on the web, and the
fetched answers are saved back into the corpus so the next identical
question is answered locally.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if bootstrap != nil {
			return bootstrap(configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

// SetAnswerService injects the answering service used by ask, chat and mcp.
func SetAnswerService(svc driving.AnswerService) {
	answerService = svc
}

// SetCorpusStore injects the corpus store used by the corpus commands.
func SetCorpusStore(store driven.CorpusStore) {
	corpusStore = store
}

// SetParaphraser injects the paraphrase client used by the rephrase command.
func SetParaphraser(p driven.Paraphraser) {
	paraphraser = p
}

// SetBootstrap registers the wiring function run after flag parsing.
func SetBootstrap(fn func(configPath string) error) {
	bootstrap = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
