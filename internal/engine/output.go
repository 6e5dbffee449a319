package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/benZhai01/vstest/internal/domain"
)

// OutputParser parses PHPUnit test output
type OutputParser struct{}

// NewOutputParser creates a new OutputParser
func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

var (
	okPattern      = regexp.MustCompile(`OK\s*\(\s*(\d+)\s+tests?`)
	testsPattern   = regexp.MustCompile(`Tests:\s*(\d+)`)
	failPattern    = regexp.MustCompile(`Failures:\s*(\d+)`)
	errPattern     = regexp.MustCompile(`Errors:\s*(\d+)`)
	failureHeading = regexp.MustCompile(`^\d+\)\s+(\S+)::(\S+)`)
	traceLine      = regexp.MustCompile(`\.php:\d+$`)
)

// ParseTestCounts extracts passed and failed test case counts from PHPUnit
// output. Falls back to one case per file when the summary line is missing.
func (p *OutputParser) ParseTestCounts(result domain.TestResult) (passed, failed int) {
	output := result.Output

	if match := okPattern.FindStringSubmatch(output); len(match) >= 2 {
		var total int
		fmt.Sscanf(match[1], "%d", &total)
		return total, 0
	}

	var total, failures, errors int
	if match := testsPattern.FindStringSubmatch(output); len(match) >= 2 {
		fmt.Sscanf(match[1], "%d", &total)
	}
	if match := failPattern.FindStringSubmatch(output); len(match) >= 2 {
		fmt.Sscanf(match[1], "%d", &failures)
	}
	if match := errPattern.FindStringSubmatch(output); len(match) >= 2 {
		fmt.Sscanf(match[1], "%d", &errors)
	}
	failed = failures + errors
	if total >= failed {
		passed = total - failed
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures extracts per-case failure blocks from PHPUnit output.
// Failure blocks look like:
//
//	1) UserTest::testCreateUser
//	Failed asserting that false is true.
//
//	/project/tests/Unit/UserTest.php:42
func (p *OutputParser) ParseFailures(result domain.TestResult) []domain.TestFailure {
	var failures []domain.TestFailure
	lines := strings.Split(result.Output, "\n")

	for i := 0; i < len(lines); i++ {
		heading := failureHeading.FindStringSubmatch(lines[i])
		if heading == nil {
			continue
		}

		failure := domain.TestFailure{
			TestName:   heading[2],
			FilePath:   result.File,
			StackTrace: []string{},
		}

		var message []string
		for j := i + 1; j < len(lines); j++ {
			line := lines[j]
			if failureHeading.MatchString(line) || strings.HasPrefix(line, "FAILURES!") || strings.HasPrefix(line, "ERRORS!") {
				i = j - 1
				break
			}
			if traceLine.MatchString(strings.TrimSpace(line)) {
				failure.StackTrace = append(failure.StackTrace, strings.TrimSpace(line))
				continue
			}
			message = append(message, line)
		}

		for len(message) > 0 && strings.TrimSpace(message[len(message)-1]) == "" {
			message = message[:len(message)-1]
		}
		for len(message) > 0 && strings.TrimSpace(message[0]) == "" {
			message = message[1:]
		}
		failure.Message = strings.Join(message, "\n")
		failures = append(failures, failure)
	}

	return failures
}
