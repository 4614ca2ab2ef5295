package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namematch/config"
	"namematch/internal/adapter/storage"
	"namematch/internal/port"
	"namematch/internal/usecase"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "namematch",
	Short: "Rank a name corpus by textual similarity to a query",
	Long: `namematch ranks the entries of a name corpus by similarity to a query
string, using edit distance, block-sequence matching, character-n-gram
TF-IDF, or a weighted combination.

Example usage:
  namematch search -q "Geetha"           # Rank with the combined metric
  namematch search -q "Jon" -m tfidf     # Rank with n-gram cosine similarity
  namematch add "Zzyzx"                  # Grow the corpus
  namematch import names/*.txt           # Bulk-load names from files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./namematch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

// newMatcher builds the engine on top of the configured storage backend.
// The returned source must be closed when the command is done.
func newMatcher() (*usecase.Matcher, port.CorpusSource, error) {
	var (
		src port.CorpusSource
		err error
	)

	switch cfg.Data.Backend {
	case "bolt":
		src, err = storage.NewBoltSource(cfg.DataPath(rootDir))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open corpus store: %w", err)
		}
	default:
		src = storage.NewJSONFileSource(cfg.DataPath(rootDir))
	}

	matcher, err := usecase.NewMatcher(src)
	if err != nil {
		src.Close()
		return nil, nil, err
	}

	return matcher, src, nil
}
