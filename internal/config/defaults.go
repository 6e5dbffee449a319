package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".vstest"
	// DefaultProcessors is the default number of worker processes
	DefaultProcessors = 4
	// ProjectFileName is the optional per-project configuration file
	ProjectFileName = "vstest.yaml"
)

// DefaultPathsToIgnore are the directories skipped when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"bootstrap",
	"public",
	"cache",
}
