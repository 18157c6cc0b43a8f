package service

import (
	"context"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/prediction"
	"github.com/best-life-api/internal/repository"
	"github.com/rs/zerolog"
)

// UserService defines the interface for user and role operations
type UserService interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetRoleID(ctx context.Context, roleName string) (*int64, error)
	ListUsernames(ctx context.Context, roleID int64) ([]string, error)
	GetUserID(ctx context.Context, userName string) (*int64, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	UpdateUserName(ctx context.Context, req *models.UpdateUserNameRequest) error
}

// ScoreService defines the interface for scores and preferences
type ScoreService interface {
	ListPredictedScores(ctx context.Context, filter models.ScoreFilter) ([]models.PredictedScore, error)
	ListCountryScores(ctx context.Context, countryID int64) ([]models.CountryScore, error)
	ListMLScores(ctx context.Context) ([]models.MLScore, error)
	CreatePreference(ctx context.Context, req *models.PreferenceRequest) error
	RecentPreferences(ctx context.Context, userID int64) ([]models.PreferenceSummary, error)
}

// LookupService defines the interface for reference data
type LookupService interface {
	CountryNames(ctx context.Context) ([]string, error)
	Countries(ctx context.Context) ([]models.Country, error)
	Factors(ctx context.Context) ([]models.Factor, error)
	Organizations(ctx context.Context, countryID, factorID int64) ([]models.Organization, error)
	Universities(ctx context.Context, countryID int64) ([]models.University, error)
}

// PredictionService defines the interface for model-backed routes
type PredictionService interface {
	Predict(ctx context.Context, in prediction.Input) (prediction.Result, error)
	PredictScore(ctx context.Context, var01, var02 string) (*models.ScorePrediction, error)
}

// Services holds all service interfaces
type Services struct {
	User       UserService
	Score      ScoreService
	Lookup     LookupService
	Prediction PredictionService
}

// NewServices creates all services. The regression route has no model in
// this deployment, so it is wired with a nil Regressor.
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	model := prediction.NewCosineModel(repos.Score, cfg.Scores.Year)

	return &Services{
		User:       newUserService(repos.User, log),
		Score:      newScoreService(repos.Score, repos.Preference, cfg.Scores.Year, log),
		Lookup:     newLookupService(repos.Lookup),
		Prediction: NewPredictionService(model, nil, log),
	}
}
