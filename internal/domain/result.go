package domain

import "time"

// TestResult represents the result of executing the selected cases of one test file
type TestResult struct {
	File     string        // path to the test file that was executed
	Methods  []string      // test methods that were requested from this file
	Success  bool          // whether all executed cases passed
	Output   string        // raw output from PHPUnit
	Err      error         // error if execution itself failed
	Duration time.Duration // time taken to execute
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	SelectedTestCases int     `json:"selected_test_cases"`
	TestFiles         int     `json:"test_files"`
	PassedTestCases   int     `json:"passed_test_cases"`
	FailedTestCases   int     `json:"failed_test_cases"`
	Duration          string  `json:"duration"`
	DurationSeconds   float64 `json:"duration_seconds"`
	Workers           int     `json:"workers"`
	Timestamp         string  `json:"timestamp"`
}

// RunSummary is the complete output structure for run results
type RunSummary struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}
