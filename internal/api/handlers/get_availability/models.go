package get_availability

import (
	"time"

	"github.com/toyesterday/agenda/internal/domain"
	getAvailability "github.com/toyesterday/agenda/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProfessionalID int64    `json:"professionalId"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

// ToUseCaseRequest конвертирует HTTP параметры в модель use case
func ToUseCaseRequest(professionalID int64, dateStr string, durationMinutes int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ProfessionalID:  professionalID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Времена отдаются в UTC в формате RFC3339, клиент сам переводит в местный пояс.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	times := make([]string, 0, len(resp.AvailableTimes))
	for _, t := range resp.AvailableTimes {
		times = append(times, t.Format(time.RFC3339))
	}

	return &AvailabilityResponse{
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableTimes: times,
	}
}
