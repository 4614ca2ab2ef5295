package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"namematch/internal/domain"
)

var (
	searchQuery  string
	searchMethod string
	searchTopK   int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Rank the corpus against a query",
	Long: `Rank every corpus entry by similarity to the query and print the top
matches.

Methods:
  combined     weighted blend of sequence ratio and edit distance (default)
  sequence     longest-matching-block ratio, case-insensitive
  levenshtein  length-normalized edit distance
  tfidf        cosine similarity over character 1-3-gram TF-IDF vectors

Examples:
  namematch search -q "Geetha"
  namematch search -q "Jon" -m tfidf -k 10 --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "name to search for (required)")
	searchCmd.Flags().StringVarP(&searchMethod, "method", "m", "", "similarity method (default from config)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	matcher, src, err := newMatcher()
	if err != nil {
		return err
	}
	defer src.Close()

	methodTag := searchMethod
	if methodTag == "" {
		methodTag = cfg.Match.Method
	}
	method, known := domain.ParseMethod(methodTag)
	if !known {
		fmt.Fprintf(cmd.ErrOrStderr(), "unknown method %q, using %s\n", methodTag, method)
	}

	topK := cfg.Match.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	result := matcher.FindMatches(searchQuery, method, topK)

	if searchJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(result.Matches) == 0 {
		fmt.Println("No matches found.")
		if method == domain.MethodTFIDF {
			if ierr := matcher.IndexError(); ierr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %v\n", ierr)
			}
		}
		return nil
	}

	fmt.Printf("Query: %q (method: %s)\n", result.Query, result.Method)
	fmt.Printf("Best match: %s (score: %.4f)\n\n", result.Best.Name, result.Best.Score)
	for i, match := range result.Matches {
		fmt.Printf("%2d. %-20s %.4f\n", i+1, match.Name, match.Score)
	}

	return nil
}
