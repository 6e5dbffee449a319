package engine

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// CaseParser extracts test case methods from a PHP test file
type CaseParser struct{}

// NewCaseParser creates a new CaseParser
func NewCaseParser() *CaseParser {
	return &CaseParser{}
}

var (
	// Methods named test*, any visibility combination:
	//   public function testCreateUser()
	//   protected static function test_user_login()
	testMethodPattern = regexp.MustCompile(`(?m)^\s*(?:(?:public|protected|private|static|final)\s+)*(?:public|protected|private)?\s*function\s+(test\w+)\s*\(`)

	// Methods marked with an @test annotation in a docblock or comment line
	annotatedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)@test\s*\n\s*(?:/\*\*.*?\*/)?\s*(?:(?:public|protected|private|static|final)\s+)*(?:public|protected|private)?\s*function\s+(\w+)\s*\(`),
		regexp.MustCompile(`(?m)/\*\*[\s\S]*?@test[\s\S]*?\*/\s*(?:(?:public|protected|private|static|final)\s+)*(?:public|protected|private)?\s*function\s+(\w+)\s*\(`),
	}
)

// FindTestCases finds all test case methods in a test file, sorted by name
func (p *CaseParser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	fileContent := string(content)

	methods := make(map[string]bool)
	for _, match := range testMethodPattern.FindAllStringSubmatch(fileContent, -1) {
		if len(match) > 1 {
			methods[match[1]] = true
		}
	}
	for _, pattern := range annotatedPatterns {
		for _, match := range pattern.FindAllStringSubmatch(fileContent, -1) {
			if len(match) > 1 && !strings.HasPrefix(match[1], "test") {
				methods[match[1]] = true
			}
		}
	}

	out := make([]string, 0, len(methods))
	for method := range methods {
		out = append(out, method)
	}
	sort.Strings(out)
	return out, nil
}
