package service

import (
	"github.com/best-life-api/internal/repository"
)

// lookupService exposes the lookup repository unchanged
type lookupService struct {
	repository.LookupRepository
}

func newLookupService(repo repository.LookupRepository) *lookupService {
	return &lookupService{LookupRepository: repo}
}
