package mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/best-life-api/internal/prediction"
)

// Verify interface compliance
var (
	_ prediction.Model     = (*MockModel)(nil)
	_ prediction.Regressor = (*MockRegressor)(nil)
)

// MockModel is a mock implementation of prediction.Model
type MockModel struct {
	PredictFunc func(ctx context.Context, in prediction.Input) (prediction.Result, error)
	Calls       []prediction.Input
}

func NewMockModel() *MockModel {
	return &MockModel{}
}

func (m *MockModel) Predict(ctx context.Context, in prediction.Input) (prediction.Result, error) {
	m.Calls = append(m.Calls, in)
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, in)
	}
	return prediction.Result{"Denmark": 0.99}, nil
}

// MockRegressor is a mock implementation of prediction.Regressor that sums
// its numeric inputs
type MockRegressor struct {
	Err error
}

func (m *MockRegressor) Predict(ctx context.Context, var01, var02 string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	a, err := strconv.ParseFloat(var01, 64)
	if err != nil {
		return 0, fmt.Errorf("var01: %w", err)
	}
	b, err := strconv.ParseFloat(var02, 64)
	if err != nil {
		return 0, fmt.Errorf("var02: %w", err)
	}
	return a + b, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
