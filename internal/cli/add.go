package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a name to the corpus",
	Long: `Add a name to the corpus. Duplicates (by exact comparison) are skipped.
On insertion the corpus is persisted and the TF-IDF index rebuilt before the
command returns.

Examples:
  namematch add "Zzyzx"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	matcher, src, err := newMatcher()
	if err != nil {
		return err
	}
	defer src.Close()

	name := args[0]

	added, err := matcher.Add(name)
	if err != nil {
		return err
	}

	if added {
		fmt.Printf("Added %q (corpus size: %d)\n", name, matcher.Stats().TotalNames)
	} else {
		fmt.Printf("%q is already in the corpus\n", name)
	}

	return nil
}
