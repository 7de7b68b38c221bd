// Package files loads many files concurrently.
package files

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// File is a loaded file.
type File struct {
	Path string
	Data []byte
}

// LoadAll reads every path with at most limit concurrent workers (limit < 1 means unbounded).
// Each worker appends its result to a shared slice under one lock, so the
// returned order is the completion order, not the order of paths.
// The first failure cancels the remaining reads.
func LoadAll(ctx context.Context, paths []string, limit int) ([]File, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var (
		mu     sync.Mutex
		loaded = make([]File, 0, len(paths))
	)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			mu.Lock()
			defer mu.Unlock()
			loaded = append(loaded, File{Path: path, Data: data})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return loaded, nil
}
