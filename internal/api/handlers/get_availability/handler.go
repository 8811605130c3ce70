package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/toyesterday/agenda/internal/api/handlers"
	getAvailability "github.com/toyesterday/agenda/internal/usecase/get_availability"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration       = "некорректная длительность услуги"
	msgProfessionalNotFound  = "мастер не найден"
	msgBusinessNotFound      = "салон не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability
// Query params: date (required, YYYY-MM-DD), duration (required, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/availability - Missing date: professional_id=%d", professionalID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров
	durationStr := r.URL.Query().Get("duration")
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid duration: professional_id=%d, duration=%q",
			professionalID, durationStr)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(professionalID, dateStr, duration)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/availability - Invalid input: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailability.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /professionals/{id}/availability - Business not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/availability - Failed to get availability: professional_id=%d, date=%s, error=%v",
				professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/availability - Availability retrieved: professional_id=%d, date=%s, slots_count=%d",
		professionalID, dateStr, len(result.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
