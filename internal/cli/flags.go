package cli

import "github.com/benZhai01/vstest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	Tests        string
	Filter       string
	Sources      []string
	SettingsPath string
	AdapterPath  string
	Processors   int
	Prepare      bool
	TestCases    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Tests:        f.Tests,
		Filter:       f.Filter,
		Sources:      f.Sources,
		SettingsPath: f.SettingsPath,
		AdapterPath:  f.AdapterPath,
		Processors:   f.Processors,
		Prepare:      f.Prepare,
		TestCases:    f.TestCases,
	}
}
