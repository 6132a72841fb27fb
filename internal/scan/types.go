package scan

import "github.com/mvp-joe/structdoc/internal/extract"

// RootPackage is the reserved package name for files directly under the scan
// root.
const RootPackage = "root"

// ClassEntry pairs one discovered class with the module it came from. Entries
// are kept as a list, never a keyed map: duplicate class names within a
// package survive to render time, where they are disambiguated.
type ClassEntry struct {
	Class  extract.ClassRecord
	Module string
}

// ModuleFunctions groups one module's top-level functions.
type ModuleFunctions struct {
	Module    string
	Functions map[string]extract.FunctionRecord
}

// AssetFile is one non-code site asset: its path relative to the scan root and
// its full content.
type AssetFile struct {
	Path    string
	Content string
}

// Result accumulates everything one walk over the tree discovered.
// ClassPackages preserves the order packages first contributed a class, which
// fixes the diagram's package order across runs.
type Result struct {
	ClassPackages []string
	Classes       map[string][]ClassEntry
	Functions     map[string][]ModuleFunctions
	Assets        []AssetFile

	// FailedFiles counts source files skipped due to read, decode, or parse
	// failures. Failures are reported and never abort the walk.
	FailedFiles int
}

// Reporter receives progress callbacks during a scan.
type Reporter interface {
	OnDiscoveryComplete(sourceFiles, assetFiles int)
	OnFileProcessed(path string)
}

// NopReporter discards all progress callbacks.
type NopReporter struct{}

func (NopReporter) OnDiscoveryComplete(sourceFiles, assetFiles int) {}

func (NopReporter) OnFileProcessed(path string) {}
