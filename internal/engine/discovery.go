package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/benZhai01/vstest/internal/domain"
	"github.com/benZhai01/vstest/internal/selection"
)

// DiscoverTests discovers test cases across the given source roots. Sources
// are scanned concurrently; every test file yields one batch delivered
// through the events callback, so batches from different sources may arrive
// interleaved and concurrently. DiscoverTests returns once every source is
// done, which is the completion signal callers block on. Unparseable files
// are surfaced as warnings, not errors; an unreadable source fails the whole
// request.
func (e *Engine) DiscoverTests(ctx context.Context, sources []string, settings *domain.RunSettings, events selection.DiscoveryEvents) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, source := range sources {
		source := source
		g.Go(func() error {
			files, err := e.scanner.Scan(source)
			if err != nil {
				return err
			}
			for _, file := range files {
				if err := ctx.Err(); err != nil {
					return err
				}
				methods, err := e.cases.FindTestCases(file)
				if err != nil {
					events.OnWarning(fmt.Sprintf("skipping unparseable test file %s: %v", file, err))
					continue
				}
				if batch := buildBatch(source, file, methods); len(batch) > 0 {
					events.OnDiscoveredTests(batch)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// buildBatch turns one file's test methods into discovered test cases with
// fully-qualified names of the form "relative/path/FileTest.php::testMethod".
func buildBatch(source, file string, methods []string) []*domain.TestCase {
	name := file
	if rel, err := filepath.Rel(source, file); err == nil {
		name = rel
	}
	name = filepath.ToSlash(name)

	batch := make([]*domain.TestCase, 0, len(methods))
	for _, method := range methods {
		batch = append(batch, &domain.TestCase{
			FullyQualifiedName: name + "::" + method,
			File:               file,
			Method:             method,
			Source:             source,
		})
	}
	return batch
}
