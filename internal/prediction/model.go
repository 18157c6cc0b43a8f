// Package prediction holds the model collaborators behind the /predict and
// /pred_scores/:var01/:var02 routes.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/best-life-api/internal/models"
)

var (
	// ErrModelUnavailable is returned when no model backs a prediction route
	ErrModelUnavailable = errors.New("regression model not configured")
	// ErrZeroVector is returned when every input weight is zero
	ErrZeroVector = errors.New("input vector has zero magnitude")
)

// Input is the four-dimensional preference vector
type Input struct {
	Health      float64
	Education   float64
	Safety      float64
	Environment float64
}

func (in Input) vector() []float64 {
	return []float64{in.Health, in.Education, in.Safety, in.Environment}
}

// Result maps a key (country name) to a model output
type Result map[string]float64

// Model ranks countries against a preference vector
type Model interface {
	Predict(ctx context.Context, in Input) (Result, error)
}

// Regressor predicts a single value from two raw variables
type Regressor interface {
	Predict(ctx context.Context, var01, var02 string) (float64, error)
}

// ScoreSource supplies the per-country score vectors
type ScoreSource interface {
	ListMLScores(ctx context.Context, year int) ([]models.MLScore, error)
}

// CosineModel scores each country by the cosine similarity between the
// input vector and that country's ML scores for one year. Countries with a
// missing dimension are skipped.
type CosineModel struct {
	scores ScoreSource
	year   int
}

// NewCosineModel creates a CosineModel reading scores for year
func NewCosineModel(scores ScoreSource, year int) *CosineModel {
	return &CosineModel{scores: scores, year: year}
}

// Predict implements Model
func (m *CosineModel) Predict(ctx context.Context, in Input) (Result, error) {
	query := in.vector()
	if norm(query) == 0 {
		return nil, ErrZeroVector
	}

	rows, err := m.scores.ListMLScores(ctx, m.year)
	if err != nil {
		return nil, fmt.Errorf("load scores for %d: %w", m.year, err)
	}

	result := make(Result, len(rows))
	for _, row := range rows {
		vec, ok := scoreVector(row)
		if !ok {
			continue
		}
		result[row.CountryName] = Cosine(query, vec)
	}
	return result, nil
}

func scoreVector(s models.MLScore) ([]float64, bool) {
	dims := []struct {
		valid bool
		value float64
	}{
		{s.HealthScore.Valid, s.HealthScore.Decimal.InexactFloat64()},
		{s.EducationScore.Valid, s.EducationScore.Decimal.InexactFloat64()},
		{s.SafetyScore.Valid, s.SafetyScore.Decimal.InexactFloat64()},
		{s.EnvironmentScore.Valid, s.EnvironmentScore.Decimal.InexactFloat64()},
	}
	vec := make([]float64, 0, len(dims))
	for _, d := range dims {
		if !d.valid {
			return nil, false
		}
		vec = append(vec, d.value)
	}
	return vec, true
}

// Cosine returns the cosine similarity of two equal-length vectors, or 0
// when either has zero magnitude
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	na, nb := norm(a), norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (na * nb)
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
