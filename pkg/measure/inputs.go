package measure

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ExpandInputs resolves file and directory arguments into a sorted list of
// CSV paths. A directory contributes every *.csv entry, non-recursively.
//
// Per-argument failures (unreadable path, directory without CSV files) are
// returned as problems instead of aborting the expansion, so a batch can
// keep going with whatever resolved.
func ExpandInputs(args []string) (paths []string, problems []error) {
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		found := 0
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
			found++
		}
		if found == 0 {
			problems = append(problems, fmt.Errorf("%s: %w", arg, ErrNoCSVFiles))
		}
	}
	slices.Sort(paths)
	return paths, problems
}
