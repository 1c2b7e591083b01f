package service

import (
	"context"

	"mangal/internal/model"
)

// StatsStore provides dashboard counters
type StatsStore interface {
	GetStats(ctx context.Context) (*model.Stats, error)
}

// StatsService serves the admin dashboard
type StatsService struct {
	store StatsStore
}

// NewStatsService creates a new stats service
func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Get returns the current counters
func (s *StatsService) Get(ctx context.Context) (*model.Stats, error) {
	return s.store.GetStats(ctx)
}
