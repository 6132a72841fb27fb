package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter implements scan.Reporter with a progress bar.
type ProgressReporter struct {
	quiet   bool
	fileBar *progressbar.ProgressBar
}

// NewProgressReporter creates a new CLI progress reporter.
func NewProgressReporter(quiet bool) *ProgressReporter {
	return &ProgressReporter{quiet: quiet}
}

func (p *ProgressReporter) OnDiscoveryComplete(sourceFiles, assetFiles int) {
	if p.quiet {
		return
	}
	log.Printf("Processing %d source files and %d asset files\n", sourceFiles, assetFiles)

	if sourceFiles == 0 {
		return
	}
	p.fileBar = progressbar.NewOptions(sourceFiles,
		progressbar.OptionSetDescription("Parsing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *ProgressReporter) OnFileProcessed(path string) {
	if p.quiet || p.fileBar == nil {
		return
	}
	p.fileBar.Add(1)
}
