package packages

import (
	"errors"
	"net/http"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/service/packages"
)

const (
	msgInvalidHotelID   = "некорректный ID отеля"
	msgInvalidPackageID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/packages?hotelId=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.QueryInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /admin/packages - Invalid hotelId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.ListPackages(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /admin/packages - Failed to list packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/packages - Packages retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/admin/packages/{packageId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathInt64(r, "packageId")
	if err != nil {
		h.logger.Warn("GET /admin/packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	pkg, err := h.service.GetPackage(r.Context(), packageID)
	if err != nil {
		h.respondError(w, "GET /admin/packages/{id}", packageID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pkg)
}

// Delete DELETE /api/v1/admin/packages/{packageId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathInt64(r, "packageId")
	if err != nil {
		h.logger.Warn("DELETE /admin/packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		h.respondError(w, "DELETE /admin/packages/{id}", packageID, err)
		return
	}

	h.logger.Info("DELETE /admin/packages/{id} - Package deleted: package_id=%d", packageID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if errors.Is(err, packages.ErrPackageNotFound) {
		h.logger.Warn("%s - Package not found: package_id=%d", op, id)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}
	h.logger.Error("%s - Failed: package_id=%d, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
