package repository

import (
	"context"

	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
)

// UserRepository defines the interface for user and role data operations
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetRoleIDByName(ctx context.Context, roleName string) (*int64, error)
	ListNamesByRoleID(ctx context.Context, roleID int64) ([]string, error)
	GetIDByName(ctx context.Context, userName string) (*int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

// ScoreRepository defines the interface for predicted and ML score reads
type ScoreRepository interface {
	ListPredicted(ctx context.Context, filter models.ScoreFilter) ([]models.PredictedScore, error)
	ListPredictedByCountry(ctx context.Context, countryID int64) ([]models.CountryScore, error)
	ListMLScores(ctx context.Context, year int) ([]models.MLScore, error)
}

// PreferenceRepository defines the interface for preference data operations
type PreferenceRepository interface {
	Create(ctx context.Context, pref *models.PreferenceRequest) error
	ListRecent(ctx context.Context, userID int64, limit uint64) ([]models.PreferenceSummary, error)
}

// LookupRepository defines the interface for reference data reads
type LookupRepository interface {
	CountryNames(ctx context.Context) ([]string, error)
	Countries(ctx context.Context) ([]models.Country, error)
	Factors(ctx context.Context) ([]models.Factor, error)
	Organizations(ctx context.Context, countryID, factorID int64) ([]models.Organization, error)
	Universities(ctx context.Context, countryID int64) ([]models.University, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User       UserRepository
	Score      ScoreRepository
	Preference PreferenceRepository
	Lookup     LookupRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepo(db),
		Score:      NewScoreRepo(db),
		Preference: NewPreferenceRepo(db),
		Lookup:     NewLookupRepo(db),
	}
}
