package predict_packages

import (
	"context"

	predictPackages "github.com/m04kA/cappadocia-tours/internal/usecase/predict_packages"
)

type PredictPackagesUseCase interface {
	Execute(ctx context.Context, req *predictPackages.Request) (*predictPackages.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
