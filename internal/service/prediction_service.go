package service

import (
	"context"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/prediction"
	"github.com/rs/zerolog"
)

// predictionService is the concrete implementation of PredictionService
type predictionService struct {
	model     prediction.Model
	regressor prediction.Regressor
	log       zerolog.Logger
}

// NewPredictionService creates a PredictionService; either collaborator may be nil
func NewPredictionService(model prediction.Model, regressor prediction.Regressor, log zerolog.Logger) PredictionService {
	return &predictionService{
		model:     model,
		regressor: regressor,
		log:       log.With().Str("service", "prediction").Logger(),
	}
}

func (s *predictionService) Predict(ctx context.Context, in prediction.Input) (prediction.Result, error) {
	if s.model == nil {
		return nil, prediction.ErrModelUnavailable
	}
	result, err := s.model.Predict(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("countries", len(result)).Msg("Cosine similarity computed")
	return result, nil
}

// PredictScore returns prediction.ErrModelUnavailable until a Regressor is wired
func (s *predictionService) PredictScore(ctx context.Context, var01, var02 string) (*models.ScorePrediction, error) {
	if s.regressor == nil {
		return nil, prediction.ErrModelUnavailable
	}
	value, err := s.regressor.Predict(ctx, var01, var02)
	if err != nil {
		return nil, err
	}
	s.log.Info().Float64("prediction", value).Msg("Regression computed")
	return &models.ScorePrediction{
		Prediction: value,
		InputVariables: models.PredictionInputs{
			Var01: var01,
			Var02: var02,
		},
	}, nil
}
