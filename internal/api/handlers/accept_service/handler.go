package accept_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/api/middleware"
	acceptService "github.com/m04kA/cappadocia-tours/internal/usecase/accept_service"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPackageID   = "некорректный ID бронирования"
	msgInvalidInput       = "некорректный ID услуги"
	msgPackageNotFound    = "бронирование не найдено"
	msgServiceNotFound    = "услуга не найдена"
	msgNotRequested       = "гость не запрашивал эту услугу"
	msgAlreadyAccepted    = "услуга уже подтверждена"
	msgNoCapacity         = "у услуги не осталось мест"
)

type Handler struct {
	useCase AcceptServiceUseCase
	logger  Logger
}

func NewHandler(useCase AcceptServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/packages/{packageId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathInt64(r, "packageId")
	if err != nil {
		h.logger.Warn("POST /admin/packages/{id}/accept - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req AcceptServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/packages/{id}/accept - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staffID := ""
	if staff, ok := middleware.GetStaff(r.Context()); ok {
		staffID = staff.UserID
	}

	result, err := h.useCase.Execute(r.Context(), &acceptService.Request{
		PackageID: packageID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, acceptService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, acceptService.ErrPackageNotFound):
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, acceptService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, acceptService.ErrNotRequested):
			handlers.RespondConflict(w, msgNotRequested)

		case errors.Is(err, acceptService.ErrAlreadyAccepted):
			handlers.RespondConflict(w, msgAlreadyAccepted)

		case errors.Is(err, acceptService.ErrNoCapacity):
			handlers.RespondConflict(w, msgNoCapacity)

		default:
			h.logger.Error("POST /admin/packages/{id}/accept - Failed: package_id=%d, service_id=%d, error=%v",
				packageID, req.ServiceID, err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /admin/packages/{id}/accept - Rejected: package_id=%d, service_id=%d, staff=%s, error=%v",
			packageID, req.ServiceID, staffID, err)
		return
	}

	h.logger.Info("POST /admin/packages/{id}/accept - Service accepted: package_id=%d, service_id=%d, staff=%s",
		packageID, req.ServiceID, staffID)
	handlers.RespondJSON(w, http.StatusOK, &AcceptServiceResponse{
		PackageID: result.PackageID,
		Services:  nonNil(result.Services),
		Accepted:  nonNil(result.Accepted),
	})
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
