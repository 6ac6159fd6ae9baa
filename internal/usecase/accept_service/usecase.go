package accept_service

import (
	"context"
	"errors"
	"fmt"

	packagesRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/packages"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
)

// UseCase use case подтверждения услуги персоналом
type UseCase struct {
	packageRepo PackageRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	policy      Policy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. Неизвестная политика считается permissive
func NewUseCase(
	packageRepo PackageRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy != PolicyStrict {
		policy = PolicyPermissive
	}
	return &UseCase{
		packageRepo: packageRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		policy:      policy,
		logger:      logger,
	}
}

// Execute добавляет услугу в accepted и уменьшает её вместимость в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptService: package=%d, service=%d, policy=%s", req.PackageID, req.ServiceID, uc.policy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcceptService: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	// 2. Чтение, проверка и обе записи в одной SERIALIZABLE транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1 Бронирование под блокировкой
		pkg, err := uc.packageRepo.GetByID(txCtx, req.PackageID)
		if err != nil {
			if errors.Is(err, packagesRepo.ErrPackageNotFound) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
		}

		// 2.2 Политика подтверждения
		if err := checkPolicy(uc.policy, pkg, req.ServiceID); err != nil {
			return err
		}

		// 2.3 Списываем место
		if err := uc.serviceRepo.DecrementCapacity(txCtx, req.ServiceID); err != nil {
			switch {
			case errors.Is(err, serviceRepo.ErrServiceNotFound):
				return ErrServiceNotFound
			case errors.Is(err, serviceRepo.ErrNoCapacity):
				return ErrNoCapacity
			default:
				return fmt.Errorf("%w: failed to decrement capacity: %v", ErrInternal, err)
			}
		}

		// 2.4 Добавляем услугу в accepted
		updated, err := uc.packageRepo.AppendAccepted(txCtx, req.PackageID, req.ServiceID)
		if err != nil {
			if errors.Is(err, packagesRepo.ErrPackageNotFound) {
				return ErrPackageNotFound
			}
			return fmt.Errorf("%w: failed to append accepted: %v", ErrInternal, err)
		}

		resp = &Response{
			PackageID: updated.ID,
			Services:  updated.Services,
			Accepted:  updated.Accepted,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("AcceptService: package=%d, service=%d: %v", req.PackageID, req.ServiceID, err)
			return nil, err
		}
		if isUseCaseError(err) {
			uc.logger.Warn("AcceptService: package=%d, service=%d rejected: %v", req.PackageID, req.ServiceID, err)
			return nil, err
		}
		// Ошибки BEGIN/COMMIT (в т.ч. конфликт сериализации)
		uc.logger.Error("AcceptService: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("AcceptService: package=%d now has accepted=%v", resp.PackageID, resp.Accepted)
	return resp, nil
}

func isUseCaseError(err error) bool {
	for _, target := range []error{
		ErrPackageNotFound,
		ErrServiceNotFound,
		ErrNotRequested,
		ErrAlreadyAccepted,
		ErrNoCapacity,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
