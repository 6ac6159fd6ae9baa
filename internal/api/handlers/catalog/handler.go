package catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/service/catalog"
	"github.com/m04kA/cappadocia-tours/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHotelID     = "некорректный ID отеля"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgHotelNotFound      = "отель не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные данные услуги"
	msgImagesDisabled     = "хранилище изображений не настроено"
	msgInvalidImage       = "ожидается файл изображения в поле image"
	msgImageTooLarge      = "файл изображения слишком большой"
)

// imageField имя multipart поля с изображением
const imageField = "image"

type Handler struct {
	service      CatalogService
	maxImageSize int64
	logger       Logger
}

// NewHandler maxImageSize - максимальный размер изображения в байтах
func NewHandler(service CatalogService, maxImageSize int64, logger Logger) *Handler {
	return &Handler{
		service:      service,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// ListServices GET /api/v1/services?hotelId=
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.QueryInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /services - Invalid hotelId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	services, err := h.service.ListServices(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, services)
}

// ListHotels GET /api/v1/admin/hotels
func (h *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.ListHotels(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/hotels - Failed to list hotels: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hotels)
}

// GetHotel GET /api/v1/admin/hotels/{hotelId}
func (h *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathInt64(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /admin/hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	hotel, err := h.service.GetHotel(r.Context(), hotelID)
	if err != nil {
		h.respondError(w, "GET /admin/hotels/{id}", hotelID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hotel)
}

// CreateService POST /api/v1/admin/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/services", req.HotelID, err)
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d, hotel_id=%d", created.ID, created.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// UpdateCapacity PATCH /api/v1/admin/services/{serviceId}/capacity
func (h *Handler) UpdateCapacity(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("PATCH /admin/services/{id}/capacity - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req models.UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/services/{id}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateCapacity(r.Context(), serviceID, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/services/{id}/capacity", serviceID, err)
		return
	}

	h.logger.Info("PATCH /admin/services/{id}/capacity - service_id=%d, capacity=%d", serviceID, updated.Capacity)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// DeleteService DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("DELETE /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		h.respondError(w, "DELETE /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: service_id=%d", serviceID)
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage POST /api/v1/admin/services/{serviceId}/image (multipart, поле image)
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("POST /admin/services/{id}/image - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// запас на заголовки multipart сверх размера файла
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+1<<20)
	if err := r.ParseMultipartForm(h.maxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /admin/services/{id}/image - Body too large: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /admin/services/{id}/image - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	file, header, err := r.FormFile(imageField)
	if err != nil {
		h.logger.Warn("POST /admin/services/{id}/image - Missing image field: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}
	defer file.Close()

	if header.Size > h.maxImageSize {
		h.logger.Warn("POST /admin/services/{id}/image - Image too large: service_id=%d, size=%d", serviceID, header.Size)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
		return
	}

	updated, err := h.service.UploadServiceImage(r.Context(), serviceID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.respondError(w, "POST /admin/services/{id}/image", serviceID, err)
		return
	}

	h.logger.Info("POST /admin/services/{id}/image - Image uploaded: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Stats GET /api/v1/admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrHotelNotFound):
		h.logger.Warn("%s - Hotel not found: id=%d", op, id)
		handlers.RespondNotFound(w, msgHotelNotFound)

	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: id=%d", op, id)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, catalog.ErrImagesDisabled):
		h.logger.Warn("%s - Image storage disabled", op)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgImagesDisabled)

	default:
		h.logger.Error("%s - Failed: id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
