// Package driver orchestrates whole-snapshot validation: it fans function
// bodies out over a worker pool, collects per-body diagnostic bags, and
// merges them into one deterministic, sorted result.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"quill/internal/db"
	"quill/internal/diag"
	"quill/internal/match"
	"quill/internal/sema"
)

// AttachCache wires the configured definition cache into the database.
func AttachCache(d *db.DB, cfg Config) error {
	if !cfg.Cache {
		return nil
	}
	var (
		cache *db.DiskCache
		err   error
	)
	if cfg.CacheDir != "" {
		cache, err = db.NewDiskCacheAt(cfg.CacheDir)
	} else {
		cache, err = db.OpenDiskCache("quill")
	}
	if err != nil {
		return err
	}
	d.SetDiskCache(cache)
	return nil
}

// ValidateAll runs the expression validator over every registered function.
// Bodies validate independently and in parallel; the shared semantic model
// is read-only during the run, so workers need no coordination beyond the
// database's own locking. The merged bag is sorted by position, never by
// completion order.
func ValidateAll(ctx context.Context, d *db.DB, cfg Config) (*diag.Bag, error) {
	ids := d.Functions()
	total := diag.NewBag(cfg.MaxDiagnostics)
	if len(ids) == 0 {
		return total, nil
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexed by position, so no mutex: each worker owns one slot.
	bags := make([]*diag.Bag, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(cfg.MaxDiagnostics)
			bags[i] = bag

			fn := d.Function(id)
			if fn == nil || fn.Body == nil || fn.Infer == nil {
				return nil
			}

			v := sema.NewExprValidator(id, fn.Body, fn.SrcMap, fn.Infer, sema.Deps{
				Defs:     d,
				Types:    d.Types(),
				Resolver: d.ResolverFor(id),
				Oracle:   match.BaselineOracle{},
				Names:    d.Names(),
			}, diag.BagReporter{Bag: bag})
			v.ValidateBody()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, err
	}

	for _, bag := range bags {
		for _, item := range bag.Items() {
			if !checkEnabled(cfg.Checks, item.Code) {
				continue
			}
			total.Add(item)
		}
	}
	total.Sort()
	total.Dedup()
	return total, nil
}

func checkEnabled(checks ChecksConfig, code diag.Code) bool {
	switch code {
	case diag.SemaMissingFields:
		return checks.MissingFields
	case diag.SemaMissingMatchArms:
		return checks.MatchArms
	case diag.SemaMissingOkWrap:
		return checks.OkWrap
	}
	return true
}
