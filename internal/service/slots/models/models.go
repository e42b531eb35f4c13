package models

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	DisplayName       string `json:"displayName"`
	StartTime         string `json:"startTime"` // "07:00"
	EndTime           string `json:"endTime"`   // "08:00"
	RegularCapacity   int    `json:"regularCapacity"`
	ExceptionCapacity int    `json:"exceptionCapacity"`
}

// UpdateCapacityRequest запрос на изменение вместимости слота
type UpdateCapacityRequest struct {
	RegularCapacity   int `json:"regularCapacity"`
	ExceptionCapacity int `json:"exceptionCapacity"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID                int64  `json:"id"`
	DisplayName       string `json:"displayName"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	RegularCapacity   int    `json:"regularCapacity"`
	ExceptionCapacity int    `json:"exceptionCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
	IsActive          bool   `json:"isActive"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.SessionSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:                s.ID,
		DisplayName:       s.DisplayName,
		StartTime:         s.StartTime.String(),
		EndTime:           s.EndTime.String(),
		RegularCapacity:   s.RegularCapacity,
		ExceptionCapacity: s.ExceptionCapacity,
		TotalCapacity:     s.TotalCapacity(),
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.SessionSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
