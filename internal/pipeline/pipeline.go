package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"studentsignal/internal/enrichment"
	"studentsignal/internal/normalize"
	"studentsignal/internal/source"
	"studentsignal/internal/store"
	"studentsignal/pkg/models"
)

var (
	// ErrDuplicateSlug means two source records map to the same slug, which
	// would make the enrichment join ambiguous.
	ErrDuplicateSlug = eris.New("duplicate slug in source set")

	ErrMissingName = eris.New("source record has no usable name")
)

// Pipeline wires one full rebuild: load, enrich, normalize, assemble,
// replace the destination, report.
type Pipeline struct {
	Source         source.Loader
	EnrichmentPath string
	Writer         store.Writer // not used when DryRun is set
	Collection     string
	Location       *time.Location // deadline calendar; nil means UTC
	Log            *zap.Logger
	DryRun         bool

	// Stamp overrides the per-run time and id generator; tests set it.
	Stamp *Stamp
}

// RunResult is what a finished run hands back to the caller for printing.
type RunResult struct {
	Sources        []models.SourceRecord
	Records        []models.TransformedRecord
	Reconciliation enrichment.Reconciliation
	Stats          RunStatistics
	Store          store.Result // zero on a dry run
	DryRun         bool
}

// Run executes the pipeline once. Any returned error means the destination
// was not replaced.
func (p *Pipeline) Run(ctx context.Context) (RunResult, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	var res RunResult
	res.DryRun = p.DryRun

	if p.Source == nil {
		return res, eris.New("pipeline: no source configured")
	}
	if !p.DryRun && p.Writer == nil {
		return res, eris.New("pipeline: no destination writer configured")
	}

	log.Info("pipeline: loading source", zap.String("source", p.Source.Name()))
	sources, err := p.Source.Load(ctx)
	if err != nil {
		return res, eris.Wrapf(err, "load source %s", p.Source.Name())
	}
	res.Sources = sources
	log.Info("pipeline: source loaded", zap.Int("records", len(sources)))

	enr := enrichment.Load(p.EnrichmentPath, log)

	stamp := NewStamp(p.Source.Name())
	if p.Stamp != nil {
		stamp = *p.Stamp
	}
	records, err := Transform(sources, enr, p.Location, stamp, log)
	if err != nil {
		return res, err
	}
	res.Records = records

	slugs := make([]string, len(records))
	for i, r := range records {
		slugs[i] = r.Slug
	}
	res.Reconciliation = Reconcile(slugs, enr, log)
	res.Stats = ComputeStatistics(records)

	if p.DryRun {
		log.Info("pipeline: dry run, destination untouched", zap.Int("records", len(records)))
		return res, nil
	}

	log.Info("pipeline: replacing destination",
		zap.String("collection", p.Collection), zap.Int("records", len(records)))
	sr, err := p.Writer.Replace(ctx, p.Collection, records)
	res.Store = sr
	if err != nil {
		return res, eris.Wrapf(err, "replace %s", p.Collection)
	}
	log.Info("pipeline: destination replaced",
		zap.String("collection", sr.Collection),
		zap.Int("inserted", sr.Inserted),
		zap.Bool("replaced_existing", sr.ReplacedExisting))
	return res, nil
}

// Transform normalizes and assembles every source record, in source order.
// It fails before producing anything when a record has no name or two
// records share a slug.
func Transform(
	sources []models.SourceRecord,
	enr enrichment.Map,
	loc *time.Location,
	stamp Stamp,
	log *zap.Logger,
) ([]models.TransformedRecord, error) {
	if log == nil {
		log = zap.NewNop()
	}

	bySlug := make(map[string]int, len(sources))
	out := make([]models.TransformedRecord, 0, len(sources))
	for i, src := range sources {
		if strings.TrimSpace(src.Name) == "" {
			return nil, eris.Wrapf(ErrMissingName, "record %d", i)
		}
		slug := normalize.Slugify(src.Name)
		if slug == "" {
			return nil, eris.Wrapf(ErrMissingName, "record %d: %q has no slug characters", i, src.Name)
		}
		if prev, dup := bySlug[slug]; dup {
			return nil, eris.Wrapf(ErrDuplicateSlug, "%q (records %d and %d)", slug, prev, i)
		}
		bySlug[slug] = i

		deadline := normalize.ParseDeadline(src.Deadline, loc)
		if deadline == nil && strings.TrimSpace(src.Deadline) != "" {
			if normalize.IsRolling(src.Deadline) {
				log.Info("pipeline: rolling deadline", zap.String("slug", slug))
			} else {
				log.Warn("pipeline: unparseable deadline",
					zap.String("slug", slug), zap.String("deadline", src.Deadline))
			}
		}

		out = append(out, Assemble(
			src,
			normalize.ParseAmount(src.Amount),
			deadline,
			slug,
			normalize.GenerateTags(src.Type, src.Category),
			enr[slug],
			stamp,
		))
	}
	return out, nil
}

// Reconcile compares record slugs with the enrichment keys and logs the
// gaps: records still waiting for curation, and enrichment entries that no
// longer match any record (usually a renamed scholarship).
func Reconcile(slugs []string, enr enrichment.Map, log *zap.Logger) enrichment.Reconciliation {
	rec := enrichment.Reconcile(slugs, enr)
	if len(rec.Unmatched) > 0 {
		log.Info("pipeline: records without enrichment",
			zap.Int("count", len(rec.Unmatched)), zap.Strings("slugs", rec.Unmatched))
	}
	if len(rec.Orphaned) > 0 {
		log.Warn("pipeline: enrichment entries match no record",
			zap.Int("count", len(rec.Orphaned)), zap.Strings("slugs", rec.Orphaned))
	}
	return rec
}
