package predict_packages

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	predictPackages "github.com/m04kA/cappadocia-tours/internal/usecase/predict_packages"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNameRequired       = "İsim ve soyisim zorunludur"
	msgInvalidInput       = "некорректные данные формы"
)

type Handler struct {
	useCase PredictPackagesUseCase
	logger  Logger
}

func NewHandler(useCase PredictPackagesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/predictions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /predictions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /predictions - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, predictPackages.ErrInvalidInput):
			h.logger.Warn("POST /predictions - Validation failed: %v", err)
			if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
				handlers.RespondBadRequest(w, msgNameRequired)
			} else {
				handlers.RespondBadRequest(w, msgInvalidInput)
			}

		default:
			h.logger.Error("POST /predictions - Failed to predict packages: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /predictions - %d recommendations, %d packages, fallback=%t",
		len(result.Recommendations), len(result.Bundles), result.Fallback)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(&req, result))
}
