package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Jobs bounds the number of units parsed at once; zero or less means
	// GOMAXPROCS.
	Jobs int
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// ParseFiles reads and parses every path in parallel. Units come back in the
// order of paths. Syntax errors stay in each unit's sink; the returned error
// only reports files that could not be read or a cancelled context.
func ParseFiles(ctx context.Context, paths []string, opts Options) ([]*Unit, error) {
	units := make([]*Unit, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, opts.jobs())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}

			defer func() { <-sem }()

			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			units[i] = ParseUnit(path, string(source))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return units, err
	}

	return units, nil
}

// Errs joins the syntax errors of all units.
func Errs(units []*Unit) error {
	var err error
	for _, u := range units {
		if u != nil {
			err = errors.Join(err, u.Err())
		}
	}
	return err
}
