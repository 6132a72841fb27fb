package scan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/mvp-joe/structdoc/internal/extract"
	"github.com/mvp-joe/structdoc/internal/parser"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Scanner walks a project tree sequentially, parsing each Python file and
// folding extraction results into per-package aggregates. One file is handled
// at a time; a file that fails to read or parse contributes nothing and the
// walk continues.
type Scanner struct {
	rootDir       string
	parser        *parser.Parser
	assetPatterns []compiledPattern
	ignorePattern []compiledPattern
	reporter      Reporter
}

// New creates a scanner rooted at rootDir. Asset patterns select the non-code
// site files to collect; ignore patterns prune files and whole directories.
func New(rootDir string, assetPatterns, ignorePatterns []string, reporter Reporter) (*Scanner, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}

	s := &Scanner{
		rootDir:  rootDir,
		parser:   parser.New(),
		reporter: reporter,
	}

	for _, pattern := range assetPatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid asset pattern %q: %w", pattern, err)
		}
		s.assetPatterns = append(s.assetPatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		s.ignorePattern = append(s.ignorePattern, compiledPattern{pattern: pattern, glob: g})
	}

	return s, nil
}

// Run walks the tree once and returns the aggregated results.
func (s *Scanner) Run() (*Result, error) {
	sourceFiles, assetFiles, err := s.discover()
	if err != nil {
		return nil, err
	}

	s.reporter.OnDiscoveryComplete(len(sourceFiles), len(assetFiles))

	result := &Result{
		Classes:   make(map[string][]ClassEntry),
		Functions: make(map[string][]ModuleFunctions),
	}

	for _, path := range sourceFiles {
		s.processSource(path, result)
		s.reporter.OnFileProcessed(path)
	}

	for _, path := range assetFiles {
		result.Assets = append(result.Assets, s.readAsset(path))
	}

	return result, nil
}

// discover lists source and asset files in lexical walk order.
func (s *Scanner) discover() (sourceFiles, assetFiles []string, err error) {
	err = filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are reported and skipped, not fatal.
			log.Printf("Warning: cannot access %s: %v\n", path, err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && s.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.shouldIgnore(relPath) {
			return nil
		}

		if strings.HasSuffix(path, ".py") {
			sourceFiles = append(sourceFiles, path)
			return nil
		}

		if s.matchesAnyPattern(relPath, s.assetPatterns) {
			assetFiles = append(assetFiles, path)
		}

		return nil
	})

	return sourceFiles, assetFiles, err
}

// processSource parses one Python file and folds its classes and functions
// into the aggregates. The tree is closed before the next file is touched.
func (s *Scanner) processSource(path string, result *Result) {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: failed to read %s: %v\n", path, err)
		result.FailedFiles++
		return
	}

	if !utf8.Valid(source) {
		log.Printf("Warning: %s is not valid UTF-8, skipping\n", path)
		result.FailedFiles++
		return
	}

	tree, err := s.parser.Parse(path, source)
	if err != nil {
		log.Printf("Warning: %v\n", err)
		result.FailedFiles++
		return
	}
	defer tree.Close()

	pkg, err := s.packageFor(path)
	if err != nil {
		log.Printf("Warning: %v\n", err)
		result.FailedFiles++
		return
	}
	module := strings.TrimSuffix(filepath.Base(path), ".py")

	if classes := extract.Classes(tree, module, pkg); len(classes) > 0 {
		if _, seen := result.Classes[pkg]; !seen {
			result.ClassPackages = append(result.ClassPackages, pkg)
		}
		for _, class := range classes {
			result.Classes[pkg] = append(result.Classes[pkg], ClassEntry{Class: class, Module: module})
		}
	}

	if funcs := extract.Functions(tree); len(funcs) > 0 {
		result.Functions[pkg] = append(result.Functions[pkg], ModuleFunctions{
			Module:    module,
			Functions: funcs,
		})
	}
}

// readAsset reads one site asset. A read failure becomes the file's content so
// the artifact still records the file, matching the generator's fail-soft
// policy for per-file errors.
func (s *Scanner) readAsset(path string) AssetFile {
	relPath, relErr := filepath.Rel(s.rootDir, path)
	if relErr != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	content, err := os.ReadFile(path)
	if err != nil {
		return AssetFile{Path: relPath, Content: fmt.Sprintf("Error reading file: %v", err)}
	}
	return AssetFile{Path: relPath, Content: string(content)}
}

// packageFor computes the logical package name for a file path.
func (s *Scanner) packageFor(path string) (string, error) {
	return PackageName(s.rootDir, filepath.Dir(path))
}

// PackageName derives the package name for a directory relative to the scan
// root. The root itself maps to RootPackage; nested directories join their
// path segments with ".".
func PackageName(rootDir, dir string) (string, error) {
	rel, err := filepath.Rel(rootDir, dir)
	if err != nil {
		return "", fmt.Errorf("computing package for %s: %w", dir, err)
	}
	if rel == "." {
		return RootPackage, nil
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "."), nil
}

// shouldIgnore checks a relative path against the ignore patterns, including
// the directory form where "node_modules" matches "node_modules/**".
func (s *Scanner) shouldIgnore(relPath string) bool {
	if s.matchesAnyPattern(relPath, s.ignorePattern) {
		return true
	}
	return s.matchesAnyPattern(relPath+"/**", s.ignorePattern)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (s *Scanner) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// A root-level file has no slash, so "**/*.html" would miss "index.html".
	// Retry those patterns with the **/ prefix stripped.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
