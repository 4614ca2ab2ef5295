package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the corpus in insertion order",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	matcher, src, err := newMatcher()
	if err != nil {
		return err
	}
	defer src.Close()

	names := matcher.Names()

	if listJSON {
		output, _ := json.MarshalIndent(names, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	stats := matcher.Stats()
	fmt.Printf("%d names, %d distinct n-grams\n\n", stats.TotalNames, stats.VocabularySize)
	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}
