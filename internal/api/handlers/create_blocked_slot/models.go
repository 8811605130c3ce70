package create_blocked_slot

import (
	"time"

	"github.com/toyesterday/agenda/internal/domain"
)

// CreateBlockedSlotRequest HTTP request model.
// ProfessionalID == nil означает блокировку для всех мастеров салона.
type CreateBlockedSlotRequest struct {
	BusinessID     int64   `json:"businessId"`
	ProfessionalID *int64  `json:"professionalId,omitempty"`
	StartTime      string  `json:"startTime"` // RFC3339
	EndTime        string  `json:"endTime"`   // RFC3339
	Reason         *string `json:"reason,omitempty"`
}

// BlockedSlotResponse HTTP response model
type BlockedSlotResponse struct {
	ID             int64   `json:"id"`
	BusinessID     int64   `json:"businessId"`
	ProfessionalID *int64  `json:"professionalId,omitempty"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Reason         *string `json:"reason,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToDomainSlot конвертирует HTTP запрос в доменную блокировку
func (r *CreateBlockedSlotRequest) ToDomainSlot() (*domain.BlockedSlot, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.BlockedSlot{
		BusinessID:     r.BusinessID,
		ProfessionalID: r.ProfessionalID,
		StartTime:      startTime.UTC(),
		EndTime:        endTime.UTC(),
		Reason:         r.Reason,
	}, nil
}

// FromDomainSlot конвертирует доменную блокировку в HTTP response
func FromDomainSlot(slot *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:             slot.ID,
		BusinessID:     slot.BusinessID,
		ProfessionalID: slot.ProfessionalID,
		StartTime:      slot.StartTime.Format(time.RFC3339),
		EndTime:        slot.EndTime.Format(time.RFC3339),
		Reason:         slot.Reason,
		CreatedAt:      slot.CreatedAt.Format(time.RFC3339),
	}
}
