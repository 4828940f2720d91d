package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	storeRepo repository.StoreRepository
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(storeRepo repository.StoreRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		storeRepo: storeRepo,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// Summary retrieves the dashboard headline counts.
func (s *adminService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	summary, err := s.storeRepo.Summary(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get dashboard summary")
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return summary, nil
}

// Stores retrieves the store listing with optional filters.
func (s *adminService) Stores(ctx context.Context, filter model.StoreFilter) ([]model.StoreListing, error) {
	stores, err := s.storeRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list stores")
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// UpdateStoreStatus enables or disables a store.
func (s *adminService) UpdateStoreStatus(ctx context.Context, storeID int64, status model.StoreStatus) error {
	if !status.Valid() {
		return model.ErrInvalidStoreStatus
	}

	if err := s.storeRepo.UpdateStatus(ctx, storeID, status); err != nil {
		s.logger.Error().
			Err(err).
			Int64("store_id", storeID).
			Str("status", string(status)).
			Msg("failed to update store status")
		return model.NewPersistenceError(err)
	}

	s.logger.Info().
		Int64("store_id", storeID).
		Str("status", string(status)).
		Msg("store status updated")

	return nil
}
