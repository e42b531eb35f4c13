package allocations

import (
	"context"
	"errors"
	"fmt"
	"time"

	allocationRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/allocation"
	"github.com/m04kA/YSM-SchedulingService/internal/service/allocations/models"
)

// Service сервис назначений планов занятий
type Service struct {
	allocationRepo AllocationRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(allocationRepo AllocationRepository, logger Logger) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		logger:         logger,
	}
}

// Cancel отменяет назначение плана (soft-cancel).
// Идемпотентна: повторная отмена уже отменённого назначения - no-op,
// а не ошибка. Неизвестный ID - ошибка, это признак бага у вызывающего
func (s *Service) Cancel(ctx context.Context, allocationID int64) error {
	s.logger.Info("Cancel: cancelling allocation id=%d", allocationID)

	alloc, err := s.allocationRepo.GetByID(ctx, allocationID)
	if err != nil {
		if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
			s.logger.Warn("Cancel: allocation id=%d not found", allocationID)
			return ErrAllocationNotFound
		}
		s.logger.Error("Cancel: repository error for allocation id=%d: %v", allocationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if alloc.IsCancelled() {
		s.logger.Info("Cancel: allocation id=%d already cancelled, nothing to do", allocationID)
		return nil
	}

	if err := s.allocationRepo.Cancel(ctx, allocationID); err != nil {
		if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
			s.logger.Warn("Cancel: allocation id=%d disappeared during cancellation", allocationID)
			return ErrAllocationNotFound
		}
		s.logger.Error("Cancel: repository error for allocation id=%d: %v", allocationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled allocation id=%d", allocationID)
	return nil
}

// GetForSlotAndDate возвращает текущее scheduled-назначение для (слот, дата)
// или nil, если план на эту дату не назначен
func (s *Service) GetForSlotAndDate(ctx context.Context, slotID int64, date time.Time) (*models.AllocationResponse, error) {
	alloc, err := s.allocationRepo.GetScheduledBySlotAndDate(ctx, slotID, date)
	if err != nil {
		if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
			return nil, nil
		}
		s.logger.Error("GetForSlotAndDate: repository error for slot=%d date=%s: %v",
			slotID, date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: GetForSlotAndDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAllocation(alloc), nil
}

// GetForDate возвращает все scheduled-назначения на дату
// (страница планирования дня)
func (s *Service) GetForDate(ctx context.Context, date time.Time) (*models.AllocationListResponse, error) {
	allocs, err := s.allocationRepo.GetScheduledByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetForDate: repository error for date=%s: %v", date.Format("2006-01-02"), err)
		return nil, fmt.Errorf("%w: GetForDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAllocationList(allocs), nil
}
