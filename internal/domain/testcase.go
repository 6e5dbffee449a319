package domain

// TestCase represents a single discovered test case.
// Instances are created by the discovery engine and referenced (not copied)
// by the selection pipeline, so pointer identity is stable for one invocation.
type TestCase struct {
	FullyQualifiedName string // e.g. "tests/Unit/UserTest.php::testCreateUser"
	File               string // absolute path to the test file
	Method             string // test method name
	Source             string // source root the case was discovered under
}
