package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/toyesterday/agenda/internal/api/handlers"
	"github.com/toyesterday/agenda/internal/service/blockedslots"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается RFC3339"
	msgInvalidSlot          = "некорректные параметры блокировки"
	msgProfessionalNotFound = "мастер не найден"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в доменную модель (с парсингом времени)
	slot, err := req.ToDomainSlot()
	if err != nil {
		h.logger.Warn("POST /blocked-slots - Failed to parse time: business_id=%d, error=%v",
			req.BusinessID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Создаем блокировку
	created, err := h.service.Create(r.Context(), slot)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid slot: business_id=%d, error=%v",
				req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, blockedslots.ErrProfessionalNotFound):
			h.logger.Warn("POST /blocked-slots - Professional not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("POST /blocked-slots - Failed to create blocked slot: business_id=%d, error=%v",
				req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-slots - Blocked slot created successfully: slot_id=%d, business_id=%d",
		created.ID, created.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainSlot(created))
}
