package domain

// TestFailure represents a failed test case
type TestFailure struct {
	TestName   string   `json:"test_name"`
	FilePath   string   `json:"file_path"`
	Message    string   `json:"message"`
	StackTrace []string `json:"stack_trace"`
	Resolved   bool     `json:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}
