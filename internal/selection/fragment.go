package selection

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// FragmentDelimiter separates test name fragments in the raw argument
	FragmentDelimiter = ','
	// FragmentEscape escapes the delimiter inside a fragment
	FragmentEscape = '\\'
	// FragmentFileExt marks an argument that names a file to read fragments from
	FragmentFileExt = ".txt"
)

// FragmentParser turns the raw --tests argument into test name fragments.
// The argument is either a delimiter-separated list, or a path ending in
// FragmentFileExt whose contents are parsed the same way.
type FragmentParser struct {
	msg Messenger
}

// NewFragmentParser creates a new FragmentParser
func NewFragmentParser(msg Messenger) *FragmentParser {
	return &FragmentParser{msg: msg}
}

// Parse returns the ordered, trimmed, non-blank fragments of the argument.
// An empty result is a ConfigurationError: fragment selection is meaningless
// without at least one filter.
func (p *FragmentParser) Parse(argument string) ([]string, error) {
	effective := argument
	if strings.EqualFold(filepath.Ext(argument), FragmentFileExt) {
		content, err := os.ReadFile(argument)
		if err != nil {
			return nil, NewConfigurationError("cannot read test name fragments from %s: %v", argument, err)
		}
		p.msg.Infof("Reading test name fragments from %s", argument)
		effective = string(content)
	}

	var fragments []string
	for _, token := range splitEscaped(effective, FragmentDelimiter, FragmentEscape) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		fragments = append(fragments, token)
	}

	if len(fragments) == 0 {
		return nil, NewConfigurationError("no test name fragments were provided")
	}
	return fragments, nil
}

// splitEscaped splits s on delim, treating an escaped delimiter as a literal
// character within a token. The escape character itself is kept verbatim when
// it does not precede the delimiter.
func splitEscaped(s string, delim, escape rune) []string {
	var tokens []string
	var current strings.Builder

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == escape && i+1 < len(runes) && runes[i+1] == delim:
			current.WriteRune(delim)
			i++
		case runes[i] == delim:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(runes[i])
		}
	}
	tokens = append(tokens, current.String())

	return tokens
}
