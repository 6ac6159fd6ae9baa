package accept_service

import (
	"context"

	acceptService "github.com/m04kA/cappadocia-tours/internal/usecase/accept_service"
)

type AcceptServiceUseCase interface {
	Execute(ctx context.Context, req *acceptService.Request) (*acceptService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
