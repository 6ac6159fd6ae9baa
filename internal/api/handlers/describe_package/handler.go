package describe_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/cappadocia-tours/internal/api/handlers"
	"github.com/m04kA/cappadocia-tours/internal/service/cart"
	describePackage "github.com/m04kA/cappadocia-tours/internal/usecase/describe_package"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "нужны имя, фамилия и хотя бы одна рекомендация"
	msgPromptRequired     = "prompt обязателен"
	msgCartNotFound       = "корзина не найдена или истекла"
	msgInvalidBundle      = "набор не может быть установлен в корзину"
	msgCompletionFailed   = "сервис генерации текста недоступен"
)

type Handler struct {
	useCase DescribePackageUseCase
	logger  Logger
}

func NewHandler(useCase DescribePackageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Describe POST /api/v1/packages/describe
func (h *Handler) Describe(w http.ResponseWriter, r *http.Request) {
	var req DescribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/describe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /packages/describe - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, describePackage.ErrInvalidInput):
			h.logger.Warn("POST /packages/describe - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cart.ErrCartNotFound):
			h.logger.Warn("POST /packages/describe - Cart not found: cart_id=%s", req.CartID)
			handlers.RespondNotFound(w, msgCartNotFound)

		case errors.Is(err, cart.ErrInvalidItem):
			h.logger.Warn("POST /packages/describe - Invalid bundle: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBundle)

		default:
			h.logger.Error("POST /packages/describe - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/describe - name=%q, activities=%d, fallback=%t",
		result.Name, len(result.Activities), result.Fallback)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// Complete POST /api/v1/gpt
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CompletionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gpt - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	text, err := h.useCase.Complete(r.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, describePackage.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgPromptRequired)

		case errors.Is(err, describePackage.ErrCompletionFailed):
			h.logger.Warn("POST /gpt - Completion failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCompletionFailed)

		default:
			h.logger.Error("POST /gpt - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CompletionResponse{Response: text})
}
