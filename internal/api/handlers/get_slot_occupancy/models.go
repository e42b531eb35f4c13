package get_slot_occupancy

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	computeOccupancy "github.com/m04kA/YSM-SchedulingService/internal/usecase/compute_occupancy"
)

// TrialInfo пробное занятие в ответе занятости
type TrialInfo struct {
	ID     int64  `json:"id"`
	LeadID int64  `json:"leadId"`
	Status string `json:"status"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	SlotID             int64       `json:"slotId"`
	DisplayName        string      `json:"displayName"`
	Date               string      `json:"date"`
	TotalBooked        int         `json:"totalBooked"`
	ActiveCount        int         `json:"activeCount"`
	NewScheduledCount  int         `json:"newScheduledCount"`
	RegularCount       int         `json:"regularCount"`
	ExceptionCount     int         `json:"exceptionCount"`
	TrialCount         int         `json:"trialCount"`
	Trials             []TrialInfo `json:"trials"`
	ExceptionMemberIDs []int64     `json:"exceptionMemberIds"`
	RegularCapacity    int         `json:"regularCapacity"`
	ExceptionCapacity  int         `json:"exceptionCapacity"`
	Available          int         `json:"available"`
	IsOverbooked       bool        `json:"isOverbooked"`
	OverbookedBy       int         `json:"overbookedBy"`
	UtilizationPercent *int        `json:"utilizationPercent"` // null при некорректной вместимости
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeOccupancy.Response) *OccupancyResponse {
	snapshot := resp.Snapshot

	memberIDs := snapshot.ExceptionMemberIDs
	if memberIDs == nil {
		memberIDs = []int64{}
	}

	trials := make([]TrialInfo, 0, len(resp.Trials))
	for _, trial := range resp.Trials {
		trials = append(trials, TrialInfo{
			ID:     trial.ID,
			LeadID: trial.LeadID,
			Status: string(trial.Status),
		})
	}

	return &OccupancyResponse{
		SlotID:             snapshot.SlotID,
		DisplayName:        resp.Slot.DisplayName,
		Date:               snapshot.ReferenceDate.Format(domain.DateFormat),
		TotalBooked:        snapshot.TotalBooked,
		ActiveCount:        snapshot.ActiveCount,
		NewScheduledCount:  snapshot.NewScheduledCount,
		RegularCount:       snapshot.RegularCount,
		ExceptionCount:     snapshot.ExceptionCount,
		TrialCount:         snapshot.TrialCount,
		Trials:             trials,
		ExceptionMemberIDs: memberIDs,
		RegularCapacity:    resp.Slot.RegularCapacity,
		ExceptionCapacity:  resp.Slot.ExceptionCapacity,
		Available:          snapshot.Available,
		IsOverbooked:       snapshot.IsOverbooked,
		OverbookedBy:       snapshot.OverbookedBy,
		UtilizationPercent: snapshot.UtilizationPercent,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(slotID int64, dateStr string) (*computeOccupancy.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &computeOccupancy.Request{
		SlotID: slotID,
		Date:   date,
	}, nil
}
