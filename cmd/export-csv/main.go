package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"studentsignal/internal/catalog"
	"studentsignal/internal/config"
	"studentsignal/internal/logging"
	"studentsignal/internal/normalize"
	"studentsignal/internal/store"
	"studentsignal/pkg/database"
	"studentsignal/pkg/models"
)

var header = []string{
	"id", "slug", "name", "amount", "amount_min", "amount_max", "amount_type",
	"deadline", "deadline_display", "is_rolling", "type", "category", "tags",
	"renewable", "application_required", "website", "application_url", "sponsor",
	"is_active", "featured", "updated_at",
}

func main() {
	outPath := flag.String("out", "data/scholarships.csv", "output CSV path")
	flag.Parse()

	cfg := config.Load()
	log, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := run(ctx, cfg, *outPath)
	if err != nil {
		log.Error("export-csv: failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("export-csv: done", zap.String("path", *outPath), zap.Int("records", n))
}

func run(ctx context.Context, cfg config.Config, outPath string) (int, error) {
	backend, err := store.Open(ctx, cfg.Store.URL, cfg.Store.Database)
	if err != nil {
		return 0, err
	}
	defer backend.Close(context.WithoutCancel(ctx))

	var repo catalog.Repo
	if backend.Kind == store.KindSQLite {
		if err := database.Migrate(ctx, backend.SQL, cfg.Store.Collection); err != nil {
			return 0, err
		}
		if repo, err = catalog.NewSQLiteRepo(backend.SQL, cfg.Store.Collection); err != nil {
			return 0, err
		}
	} else {
		repo = catalog.NewMongoRepo(backend.Mongo, cfg.Store.Database, cfg.Store.Collection)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, eris.Wrap(err, "create output dir")
	}
	f, err := os.Create(outPath)
	if err != nil {
		return 0, eris.Wrap(err, "create output file")
	}
	defer f.Close()

	n, err := exportCatalog(ctx, repo, f)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}

// exportCatalog pages through the whole catalog in name order and writes
// one CSV row per record.
func exportCatalog(ctx context.Context, repo catalog.Repo, out io.Writer) (int, error) {
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return 0, err
	}

	written := 0
	for offset := 0; ; offset += catalog.MaxLimit {
		page, err := repo.List(ctx, catalog.ListQuery{Limit: catalog.MaxLimit, Offset: offset})
		if err != nil {
			return written, eris.Wrap(err, "list catalog")
		}
		for _, r := range page {
			if err := w.Write(row(r)); err != nil {
				return written, err
			}
			written++
		}
		if len(page) < catalog.MaxLimit {
			break
		}
	}

	w.Flush()
	return written, w.Error()
}

func row(r models.TransformedRecord) []string {
	return []string{
		r.ID,
		r.Slug,
		r.Name,
		r.Amount,
		optInt(r.AmountMin),
		optInt(r.AmountMax),
		string(r.AmountType),
		normalize.FormatDeadline(r.Deadline),
		r.DeadlineDisplay,
		strconv.FormatBool(r.IsRolling),
		r.Type,
		r.Category,
		strings.Join(r.Tags, ";"),
		strconv.FormatBool(r.Renewable),
		strconv.FormatBool(r.ApplicationRequired),
		optString(r.Website),
		optString(r.ApplicationURL),
		optString(r.Sponsor),
		strconv.FormatBool(r.IsActive),
		strconv.FormatBool(r.Featured),
		r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func optInt(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func optString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
