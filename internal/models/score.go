package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Scores and weights are numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PredictedScore is one (country, factor) predicted score
type PredictedScore struct {
	CountryID int64           `json:"country_ID" db:"country_id"`
	FactorID  int64           `json:"factor_ID" db:"factor_id"`
	Score     decimal.Decimal `json:"pred_score" db:"pred_score"`
}

// CountryScore is a predicted score projected for a single country
type CountryScore struct {
	FactorID int64           `json:"factor_ID" db:"factor_id"`
	Score    decimal.Decimal `json:"pred_score" db:"pred_score"`
}

// ScoreFilter carries the optional query-string filters of GET /pred_scores.
// Empty means "not filtered".
type ScoreFilter struct {
	CountryID string
	FactorID  string
	PredScore string
}

// MLScore is a country's yearly score across the four dimensions
type MLScore struct {
	CountryName      string              `json:"country_name" db:"country_name"`
	HealthScore      decimal.NullDecimal `json:"health_score" db:"health_score"`
	EducationScore   decimal.NullDecimal `json:"education_score" db:"education_score"`
	SafetyScore      decimal.NullDecimal `json:"safety_score" db:"safety_score"`
	EnvironmentScore decimal.NullDecimal `json:"environment_score" db:"environment_score"`
}

// PredictionInputs echoes the raw variables of a regression request
type PredictionInputs struct {
	Var01 string `json:"var01"`
	Var02 string `json:"var02"`
}

// ScorePrediction is the response of GET /pred_scores/:var01/:var02
type ScorePrediction struct {
	Prediction     float64          `json:"prediction"`
	InputVariables PredictionInputs `json:"input_variables"`
}
