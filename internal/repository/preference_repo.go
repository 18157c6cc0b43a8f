package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
)

// preferenceRepo is the concrete implementation of PreferenceRepository
type preferenceRepo struct {
	db *database.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *database.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

// Create appends one preference row; absent fields are stored as NULL
func (r *preferenceRepo) Create(ctx context.Context, pref *models.PreferenceRequest) error {
	query, args, err := psql.
		Insert("preference").
		Columns(models.PreferenceColumns...).
		Values(pref.Values()...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create preference: %w", err)
	}
	return nil
}

// ListRecent returns the newest preferences of a user, newest first
func (r *preferenceRepo) ListRecent(ctx context.Context, userID int64, limit uint64) ([]models.PreferenceSummary, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("pref_id", "top_country").
		From("preference").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("pref_date DESC", "pref_id DESC").
		Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("list preferences for user %d: %w", userID, err)
	}
	defer rows.Close()

	prefs := make([]models.PreferenceSummary, 0)
	for rows.Next() {
		var p models.PreferenceSummary
		var topCountry sql.NullString
		if err := rows.Scan(&p.ID, &topCountry); err != nil {
			return nil, err
		}
		if topCountry.Valid {
			p.TopCountry = &topCountry.String
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}
