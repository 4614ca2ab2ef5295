package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [patterns...]",
	Short: "Bulk-load names from text files",
	Long: `Read names (one per line, blank lines skipped) from every file matching
the given glob patterns and add the absent ones to the corpus in a single
batch: one save and one index rebuild regardless of how many names come in.

Patterns default to the config's import includes.

Examples:
  namematch import names.txt
  namematch import "datasets/**/*.txt"`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Import.Includes
	}

	var files []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		fmt.Println("No files matched.")
		return nil
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Reading"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	var names []string
	for _, path := range files {
		fileNames, err := readNames(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		names = append(names, fileNames...)
		bar.Add(1)
	}

	matcher, src, err := newMatcher()
	if err != nil {
		return err
	}
	defer src.Close()

	added, err := matcher.Import(names)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d new names from %d files (%d read, corpus size: %d)\n",
		added, len(files), len(names), matcher.Stats().TotalNames)

	return nil
}

// readNames reads one name per line, trimming whitespace and skipping
// blank lines.
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, scanner.Err()
}
