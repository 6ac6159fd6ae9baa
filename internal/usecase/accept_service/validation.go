package accept_service

import (
	"fmt"

	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageId must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	return nil
}

// checkPolicy проверяет, можно ли подтвердить услугу для бронирования
func checkPolicy(policy Policy, pkg *domain.Package, serviceID int64) error {
	if policy != PolicyStrict {
		return nil
	}
	if !pkg.IsRequested(serviceID) {
		return fmt.Errorf("%w: service id=%d, package id=%d", ErrNotRequested, serviceID, pkg.ID)
	}
	if pkg.IsAccepted(serviceID) {
		return fmt.Errorf("%w: service id=%d, package id=%d", ErrAlreadyAccepted, serviceID, pkg.ID)
	}
	return nil
}
