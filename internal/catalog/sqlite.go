package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"studentsignal/internal/normalize"
	"studentsignal/pkg/database"
	"studentsignal/pkg/models"
)

type SQLiteRepo struct {
	DB    *sql.DB
	Table string
}

func NewSQLiteRepo(db *sql.DB, table string) (*SQLiteRepo, error) {
	if err := database.ValidateTableName(table); err != nil {
		return nil, eris.Wrap(err, "catalog table")
	}
	return &SQLiteRepo{DB: db, Table: table}, nil
}

func (r *SQLiteRepo) Get(ctx context.Context, idOrSlug string) (*models.TransformedRecord, error) {
	row := r.DB.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE id = ? OR slug = ?
		LIMIT 1
	`, database.ScholarshipColumns, r.Table), idOrSlug, idOrSlug)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "get %s", idOrSlug)
	}
	return &rec, nil
}

func (r *SQLiteRepo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := r.buildListSQL(q, true)
	var total int
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, eris.Wrap(err, "count scan")
	}
	return total, nil
}

func (r *SQLiteRepo) List(ctx context.Context, q ListQuery) ([]models.TransformedRecord, error) {
	sqlStr, args := r.buildListSQL(q, false)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, eris.Wrap(err, "list query")
	}
	defer rows.Close()

	out := make([]models.TransformedRecord, 0, q.limit())
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, eris.Wrap(err, "list scan")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "rows err")
	}
	return out, nil
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// likeEscaper makes user text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListSQL builds either COUNT(*) or the paged SELECT.
// The tag filter matches the quoted tag inside the stored JSON array text.
func (r *SQLiteRepo) buildListSQL(q ListQuery, countOnly bool) (string, []any) {
	sqlStr := fmt.Sprintf(`SELECT %s FROM %s`, database.ScholarshipColumns, r.Table)
	if countOnly {
		sqlStr = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.Table)
	}

	var where []string
	var args []any

	if s := strings.TrimSpace(q.Search); s != "" {
		where = append(where, `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`)
		kw := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		args = append(args, kw, kw)
	}
	if s := strings.TrimSpace(q.Category); s != "" {
		where = append(where, "category = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(q.Type); s != "" {
		where = append(where, "type = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(q.Tag); s != "" {
		where = append(where, `tags LIKE ? ESCAPE '\'`)
		args = append(args, `%"`+likeEscaper.Replace(strings.ToLower(s))+`"%`)
	}
	if q.Renewable != nil {
		where = append(where, "renewable = ?")
		args = append(args, *q.Renewable)
	}

	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}
	if !countOnly {
		sqlStr += " ORDER BY name ASC LIMIT ? OFFSET ?"
		args = append(args, q.limit(), q.offset())
	}
	return sqlStr, args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (models.TransformedRecord, error) {
	var (
		rec             models.TransformedRecord
		amount          sql.NullString
		amountMin       sql.NullInt64
		amountMax       sql.NullInt64
		amountType      string
		deadline        sql.NullString
		deadlineDisplay sql.NullString
		typ             sql.NullString
		category        sql.NullString
		tagsJSON        string
		description     sql.NullString
		eligibilityJSON string
		website         sql.NullString
		applicationURL  sql.NullString
		sponsor         sql.NullString
		sponsorWebsite  sql.NullString
		imageURL        sql.NullString
		createdAt       string
		updatedAt       string
		sourceColl      sql.NullString
	)

	if err := s.Scan(
		&rec.ID, &rec.Slug, &rec.Name, &amount, &amountMin, &amountMax, &amountType,
		&deadline, &deadlineDisplay, &rec.IsRolling, &typ, &category, &tagsJSON,
		&description, &eligibilityJSON, &rec.Renewable, &rec.ApplicationRequired, &website, &applicationURL,
		&sponsor, &sponsorWebsite, &imageURL, &rec.IsActive, &rec.Featured,
		&createdAt, &updatedAt, &sourceColl,
	); err != nil {
		return rec, err
	}

	rec.Amount = amount.String
	rec.AmountMin = int64Ptr(amountMin)
	rec.AmountMax = int64Ptr(amountMax)
	rec.AmountType = models.AmountKind(amountType)
	if deadline.Valid {
		t, err := time.Parse(normalize.ISOLayout, deadline.String)
		if err != nil {
			return rec, eris.Wrapf(err, "deadline of %s", rec.Slug)
		}
		rec.Deadline = &t
	}
	rec.DeadlineDisplay = deadlineDisplay.String
	rec.Type = typ.String
	rec.Category = category.String
	rec.Description = description.String
	rec.Website = stringPtr(website)
	rec.ApplicationURL = stringPtr(applicationURL)
	rec.Sponsor = stringPtr(sponsor)
	rec.SponsorWebsite = stringPtr(sponsorWebsite)
	rec.ImageURL = imageURL.String
	rec.SourceCollection = sourceColl.String

	rec.Tags = []string{}
	rec.Eligibility = []string{}
	if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil {
		return rec, eris.Wrapf(err, "tags of %s", rec.Slug)
	}
	if err := json.Unmarshal([]byte(eligibilityJSON), &rec.Eligibility); err != nil {
		return rec, eris.Wrapf(err, "eligibility of %s", rec.Slug)
	}

	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return rec, eris.Wrapf(err, "createdAt of %s", rec.Slug)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return rec, eris.Wrapf(err, "updatedAt of %s", rec.Slug)
	}
	return rec, nil
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
