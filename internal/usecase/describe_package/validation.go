package describe_package

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: firstName and lastName are required", ErrInvalidInput)
	}
	if len(req.Recommendations) == 0 {
		return fmt.Errorf("%w: at least one recommendation is required", ErrInvalidInput)
	}
	if req.Adults < 0 || req.Children < 0 {
		return fmt.Errorf("%w: adults and children must be non-negative", ErrInvalidInput)
	}
	return nil
}
