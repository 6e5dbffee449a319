package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"github.com/benZhai01/vstest/internal/config"
	"github.com/benZhai01/vstest/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays the result of a selective run
func (f *Formatter) PrintSummary(summary *domain.RunSummary) {
	meta := summary.Meta

	fmt.Println()
	color.Cyan("Selected test cases: %d across %d file(s)", meta.SelectedTestCases, meta.TestFiles)
	color.Green("Passed: %d", meta.PassedTestCases)
	if meta.FailedTestCases > 0 {
		color.Red("Failed: %d", meta.FailedTestCases)
	} else {
		color.White("Failed: 0")
	}
	color.White("Duration: %.2fs | Workers: %d", meta.DurationSeconds, meta.Workers)

	fmt.Println()
	if meta.FailedTestCases == 0 {
		color.Green("✓ All selected tests passed!")
		return
	}

	color.Red("✗ %d test case failure(s)", meta.FailedTestCases)
	f.printFailures(summary.Details)
}

// printFailures lists failures grouped by file
func (f *Formatter) printFailures(failures []domain.TestFailure) {
	byFile := make(map[string][]domain.TestFailure)
	for _, failure := range failures {
		byFile[failure.FilePath] = append(byFile[failure.FilePath], failure)
	}

	var files []string
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		rel := file
		if r, err := filepath.Rel(f.config.ProjectPath, file); err == nil {
			rel = r
		}
		color.Cyan("  %s", rel)
		for _, failure := range byFile[file] {
			color.Red("    ✗ %s", failure.TestName)
		}
	}
}

// PrintTestList prints the discovered test cases grouped by file
func (f *Formatter) PrintTestList(testCases []*domain.TestCase, showCases bool) {
	byFile := make(map[string][]*domain.TestCase)
	var files []string
	for _, tc := range testCases {
		if _, seen := byFile[tc.File]; !seen {
			files = append(files, tc.File)
		}
		byFile[tc.File] = append(byFile[tc.File], tc)
	}

	if showCases {
		color.Green("Found %d test case(s) in %d file(s):\n", len(testCases), len(files))
	} else {
		color.Green("Found %d test file(s):\n", len(files))
	}

	for i, file := range files {
		rel := file
		if r, err := filepath.Rel(f.config.ProjectPath, file); err == nil {
			rel = r
		}

		last := i == len(files)-1
		if last {
			color.Cyan("└── %s", rel)
		} else {
			color.Cyan("├── %s", rel)
		}

		if !showCases {
			continue
		}
		for j, tc := range byFile[file] {
			var prefix string
			switch {
			case last && j == len(byFile[file])-1:
				prefix = "    └── "
			case last:
				prefix = "    ├── "
			case j == len(byFile[file])-1:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(tc.Method))
		}
	}
}
