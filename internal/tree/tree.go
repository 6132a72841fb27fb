// Package tree renders a directory as an ASCII tree and optionally splices
// the result into a README section. It is a companion utility to the main
// documentation generator and shares none of its analysis machinery.
package tree

import (
	"fmt"
	"os"
	"strings"
)

// Generate renders dir and everything under it as an ASCII tree. Entries whose
// name appears in exclusions are skipped, as are compiled .pyc files.
func Generate(dir string, exclusions []string) (string, error) {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, name := range exclusions {
		excluded[name] = struct{}{}
	}

	lines := []string{dir}
	if err := walkDir(dir, "", excluded, &lines); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func walkDir(dir, prefix string, excluded map[string]struct{}, lines *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	kept := entries[:0]
	for _, entry := range entries {
		if _, skip := excluded[entry.Name()]; skip {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".pyc") {
			continue
		}
		kept = append(kept, entry)
	}

	for i, entry := range kept {
		last := i == len(kept)-1

		connector := "├── "
		if last {
			connector = "└── "
		}
		*lines = append(*lines, prefix+connector+entry.Name())

		if entry.IsDir() {
			extension := "│   "
			if last {
				extension = "    "
			}
			if err := walkDir(dir+string(os.PathSeparator)+entry.Name(), prefix+extension, excluded, lines); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clean replaces non-breaking spaces with regular spaces so the tree renders
// consistently in plain-text viewers.
func Clean(content string) string {
	return strings.ReplaceAll(content, " ", " ")
}

// WriteFile persists the tree content to a file.
func WriteFile(content, path string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing tree to %s: %w", path, err)
	}
	return nil
}
