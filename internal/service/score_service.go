package service

import (
	"context"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/repository"
	"github.com/rs/zerolog"
)

// RecentPreferenceLimit caps GET /preference/:user_id
const RecentPreferenceLimit = 5

// scoreService is the concrete implementation of ScoreService
type scoreService struct {
	scores      repository.ScoreRepository
	preferences repository.PreferenceRepository
	year        int
	log         zerolog.Logger
}

func newScoreService(scores repository.ScoreRepository, prefs repository.PreferenceRepository, year int, log zerolog.Logger) *scoreService {
	return &scoreService{
		scores:      scores,
		preferences: prefs,
		year:        year,
		log:         log.With().Str("service", "score").Logger(),
	}
}

func (s *scoreService) ListPredictedScores(ctx context.Context, filter models.ScoreFilter) ([]models.PredictedScore, error) {
	s.log.Debug().
		Str("country_id", filter.CountryID).
		Str("factor_id", filter.FactorID).
		Str("pred_score", filter.PredScore).
		Msg("Listing predicted scores")
	return s.scores.ListPredicted(ctx, filter)
}

func (s *scoreService) ListCountryScores(ctx context.Context, countryID int64) ([]models.CountryScore, error) {
	return s.scores.ListPredictedByCountry(ctx, countryID)
}

// ListMLScores returns scores for the configured year
func (s *scoreService) ListMLScores(ctx context.Context) ([]models.MLScore, error) {
	return s.scores.ListMLScores(ctx, s.year)
}

func (s *scoreService) CreatePreference(ctx context.Context, req *models.PreferenceRequest) error {
	if err := s.preferences.Create(ctx, req); err != nil {
		return err
	}
	s.log.Info().Msg("Preference created")
	return nil
}

func (s *scoreService) RecentPreferences(ctx context.Context, userID int64) ([]models.PreferenceSummary, error) {
	return s.preferences.ListRecent(ctx, userID, RecentPreferenceLimit)
}
