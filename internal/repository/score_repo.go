package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
)

// scoreRepo is the concrete implementation of ScoreRepository
type scoreRepo struct {
	db *database.DB
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db *database.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

// ListPredicted returns predicted scores matching every provided filter.
// Filters fold in the order country_id, factor_id, pred_score.
func (r *scoreRepo) ListPredicted(ctx context.Context, filter models.ScoreFilter) ([]models.PredictedScore, error) {
	query := FoldFilters(
		psql.Select("country_id", "factor_id", "pred_score").From("predicted_score"),
		Filter{Column: "country_id", Value: filter.CountryID},
		Filter{Column: "factor_id", Value: filter.FactorID},
		Filter{Column: "pred_score", Value: filter.PredScore},
	)

	rows, err := queryRows(ctx, r.db, query)
	if err != nil {
		return nil, fmt.Errorf("list predicted scores: %w", err)
	}
	defer rows.Close()

	scores := make([]models.PredictedScore, 0)
	for rows.Next() {
		var s models.PredictedScore
		if err := rows.Scan(&s.CountryID, &s.FactorID, &s.Score); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ListPredictedByCountry returns every factor score for one country
func (r *scoreRepo) ListPredictedByCountry(ctx context.Context, countryID int64) ([]models.CountryScore, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("factor_id", "pred_score").
		From("predicted_score").
		Where(sq.Eq{"country_id": countryID}))
	if err != nil {
		return nil, fmt.Errorf("list predicted scores for country %d: %w", countryID, err)
	}
	defer rows.Close()

	scores := make([]models.CountryScore, 0)
	for rows.Next() {
		var s models.CountryScore
		if err := rows.Scan(&s.FactorID, &s.Score); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ListMLScores returns each country's ML scores for the given year
func (r *scoreRepo) ListMLScores(ctx context.Context, year int) ([]models.MLScore, error) {
	rows, err := queryRows(ctx, r.db, psql.
		Select("c.country_name", "s.health_score", "s.education_score", "s.safety_score", "s.environment_score").
		From("ml_score s").
		Join("country c ON s.country_id = c.country_id").
		Where(sq.Eq{"s.score_year": year}))
	if err != nil {
		return nil, fmt.Errorf("list ml scores for %d: %w", year, err)
	}
	defer rows.Close()

	scores := make([]models.MLScore, 0)
	for rows.Next() {
		var s models.MLScore
		if err := rows.Scan(&s.CountryName, &s.HealthScore, &s.EducationScore, &s.SafetyScore, &s.EnvironmentScore); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
