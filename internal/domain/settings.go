package domain

// RunSettings is the effective PHPUnit configuration captured once at the
// start of an invocation. It is opaque to the selection pipeline and passed
// through unchanged to both the discovery and run requests.
type RunSettings struct {
	Path string // path to the configuration file, empty when none was given
	Raw  []byte // file contents as captured
}
