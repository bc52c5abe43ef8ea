package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"studentsignal/internal/normalize"
	"studentsignal/pkg/database"
	"studentsignal/pkg/models"
)

// SQLiteWriter rebuilds a catalog table inside one transaction: the new
// generation is built in a staging table, counted, and renamed over the
// destination. SQLite DDL is transactional, so readers see either the old
// table or the new one.
type SQLiteWriter struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewSQLiteWriter(db *sql.DB, log *zap.Logger) *SQLiteWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLiteWriter{DB: db, Log: log}
}

func (w *SQLiteWriter) Replace(ctx context.Context, table string, records []models.TransformedRecord) (res Result, err error) {
	res.Collection = table
	tr := newTracker(w.Log.With(zap.String("collection", table), zap.String("backend", "sqlite")))
	defer func() { res.States = tr.states() }()

	if err := database.ValidateTableName(table); err != nil {
		return res, tr.fail(eris.Wrap(ErrInvalidName, err.Error()))
	}
	staging := table + "_staging"

	tr.to(StateChecking)
	tx, err := w.DB.BeginTx(ctx, nil)
	if err != nil {
		return res, tr.fail(eris.Wrap(err, "begin tx"))
	}
	defer tx.Rollback()

	exists, err := database.TableExists(ctx, tx, table)
	if err != nil {
		return res, tr.fail(eris.Wrap(err, "check destination"))
	}
	res.ReplacedExisting = exists

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, staging)); err != nil {
		return res, tr.fail(eris.Wrap(err, "drop stale staging table"))
	}
	if err := database.CreateScholarshipTable(ctx, tx, staging); err != nil {
		return res, tr.fail(eris.Wrap(err, "create staging table"))
	}

	tr.to(StateInserting)
	if err := insertRecords(ctx, tx, staging, records); err != nil {
		return res, tr.fail(err)
	}

	tr.to(StateVerifying)
	var n int
	if err := tx.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, staging)).Scan(&n); err != nil {
		return res, tr.fail(eris.Wrap(err, "count staging rows"))
	}
	if err := verifyCount(len(records), n); err != nil {
		return res, tr.fail(err)
	}

	tr.to(StateSwapping)
	if exists {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE %s`, table)); err != nil {
			return res, tr.fail(eris.Wrap(err, "drop previous generation"))
		}
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`ALTER TABLE %s RENAME TO %s`, staging, table)); err != nil {
		return res, tr.fail(eris.Wrap(err, "rename staging table"))
	}
	if err := database.CreateScholarshipIndexes(ctx, tx, table); err != nil {
		return res, tr.fail(eris.Wrap(err, "create indexes"))
	}
	if err := tx.Commit(); err != nil {
		return res, tr.fail(eris.Wrap(err, "commit"))
	}

	res.Inserted = n
	tr.to(StateDone)
	return res, nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, table string, records []models.TransformedRecord) error {
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, table, database.ScholarshipColumns))
	if err != nil {
		return eris.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, r := range records {
		tags, err := json.Marshal(nonNil(r.Tags))
		if err != nil {
			return eris.Wrapf(err, "marshal tags for %s", r.Slug)
		}
		eligibility, err := json.Marshal(nonNil(r.Eligibility))
		if err != nil {
			return eris.Wrapf(err, "marshal eligibility for %s", r.Slug)
		}

		if _, err := stmt.ExecContext(
			ctx,
			r.ID,
			r.Slug,
			r.Name,
			r.Amount,
			nullInt(r.AmountMin),
			nullInt(r.AmountMax),
			string(r.AmountType),
			nullTime(r.Deadline),
			r.DeadlineDisplay,
			r.IsRolling,
			r.Type,
			r.Category,
			string(tags),
			r.Description,
			string(eligibility),
			r.Renewable,
			r.ApplicationRequired,
			nullString(r.Website),
			nullString(r.ApplicationURL),
			nullString(r.Sponsor),
			nullString(r.SponsorWebsite),
			r.ImageURL,
			r.IsActive,
			r.Featured,
			r.CreatedAt.UTC().Format(time.RFC3339Nano),
			r.UpdatedAt.UTC().Format(time.RFC3339Nano),
			r.SourceCollection,
		); err != nil {
			return eris.Wrapf(err, "insert %s", r.Slug)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: normalize.FormatDeadline(p), Valid: true}
}
