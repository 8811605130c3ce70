package get_client_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/toyesterday/agenda/internal/api/handlers"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем clientId из URL
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Получаем историю записей. Отсутствие записей - не ошибка, пустой список.
	result, err := h.service.GetByClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{id}/appointments - Failed to get appointments: client_id=%d, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/appointments - Appointments retrieved: client_id=%d, count=%d",
		clientID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(clientID, result))
}
