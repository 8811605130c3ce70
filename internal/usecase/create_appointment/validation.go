package create_appointment

import (
	"fmt"
	"strings"

	"github.com/toyesterday/agenda/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional_id must be positive", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for i, svc := range req.Services {
		if strings.TrimSpace(svc.Name) == "" {
			return fmt.Errorf("%w: services[%d]: name is required", ErrInvalidInput, i)
		}
		if svc.Price < 0 {
			return fmt.Errorf("%w: services[%d]: price must not be negative", ErrInvalidInput, i)
		}
		if svc.DurationMinutes < domain.MinDurationMinutes || svc.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: services[%d]: duration must be between %d and %d minutes",
				ErrInvalidInput, i, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client_phone is required", ErrInvalidInput)
	}

	return nil
}
