package artifact

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Inventory is the result of probing the artifact root for every
// filename the dashboard references. It only records presence; the
// dashboard degrades per-slot at render time regardless.
type Inventory struct {
	Present []string
	Missing []string
}

// Scan probes the given filenames concurrently and reports which are
// present. Used at startup so operators can see which plots the
// pipeline has not produced yet.
func (s *Store) Scan(ctx context.Context, filenames []string) (*Inventory, error) {
	type probe struct {
		name    string
		present bool
	}

	results := make([]probe, len(filenames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = probe{name: name, present: s.Exists(name)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inv := &Inventory{}
	for _, r := range results {
		if r.present {
			inv.Present = append(inv.Present, r.name)
		} else {
			inv.Missing = append(inv.Missing, r.name)
		}
	}
	sort.Strings(inv.Present)
	sort.Strings(inv.Missing)
	return inv, nil
}
