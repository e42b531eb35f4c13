package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
	"github.com/m04kA/YSM-SchedulingService/pkg/types"
)

// Service сервис реестра слотов
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetActive возвращает активные слоты в порядке создания
func (s *Service) GetActive(ctx context.Context) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.GetActive(ctx)
	if err != nil {
		s.logger.Error("GetActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// GetByID возвращает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// Create создает новый слот
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot %q (%s-%s, capacity %d+%d)",
		req.DisplayName, req.StartTime, req.EndTime, req.RegularCapacity, req.ExceptionCapacity)

	if err := validateCapacity(req.RegularCapacity, req.ExceptionCapacity); err != nil {
		s.logger.Warn("Create: capacity validation failed: %v", err)
		return nil, err
	}

	if req.DisplayName == "" || len(req.DisplayName) > domain.MaxDisplayNameLength {
		return nil, fmt.Errorf("%w: displayName must be 1-%d characters", ErrInvalidInput, domain.MaxDisplayNameLength)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	slot := &domain.SessionSlot{
		DisplayName:       req.DisplayName,
		StartTime:         startTime,
		EndTime:           endTime,
		RegularCapacity:   req.RegularCapacity,
		ExceptionCapacity: req.ExceptionCapacity,
		IsActive:          true,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// UpdateCapacity изменяет вместимость слота.
// Единственная мутация слота после создания - все остальные поля
// неизменяемы, сам слот не удаляется, только деактивируется
func (s *Service) UpdateCapacity(ctx context.Context, slotID int64, req *models.UpdateCapacityRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpdateCapacity: slot id=%d, regular=%d, exception=%d",
		slotID, req.RegularCapacity, req.ExceptionCapacity)

	if err := validateCapacity(req.RegularCapacity, req.ExceptionCapacity); err != nil {
		s.logger.Warn("UpdateCapacity: capacity validation failed for slot id=%d: %v", slotID, err)
		return nil, err
	}

	updated, err := s.slotRepo.UpdateCapacity(ctx, slotID, req.RegularCapacity, req.ExceptionCapacity)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateCapacity: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateCapacity: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: UpdateCapacity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCapacity: successfully updated slot id=%d", slotID)
	return models.FromDomainSlot(updated), nil
}

// Deactivate выводит слот из расписания. Слот не удаляется:
// история подписок и назначений продолжает на него ссылаться
func (s *Service) Deactivate(ctx context.Context, slotID int64) error {
	s.logger.Info("Deactivate: slot id=%d", slotID)

	if err := s.slotRepo.Deactivate(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Deactivate: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Deactivate: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated slot id=%d", slotID)
	return nil
}

// validateCapacity проверяет значения вместимости:
// регулярная >= 1, exception >= 0, обе в допустимых пределах
func validateCapacity(regular, exception int) error {
	if regular < domain.MinRegularCapacity {
		return fmt.Errorf("%w: regularCapacity must be at least %d", ErrInvalidCapacity, domain.MinRegularCapacity)
	}
	if regular > domain.MaxRegularCapacity {
		return fmt.Errorf("%w: regularCapacity must not exceed %d", ErrInvalidCapacity, domain.MaxRegularCapacity)
	}
	if exception < domain.MinExceptionCapacity {
		return fmt.Errorf("%w: exceptionCapacity must not be negative", ErrInvalidCapacity)
	}
	if exception > domain.MaxExceptionCapacity {
		return fmt.Errorf("%w: exceptionCapacity must not exceed %d", ErrInvalidCapacity, domain.MaxExceptionCapacity)
	}
	return nil
}
