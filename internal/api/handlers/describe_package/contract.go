package describe_package

import (
	"context"

	describePackage "github.com/m04kA/cappadocia-tours/internal/usecase/describe_package"
)

type DescribePackageUseCase interface {
	Execute(ctx context.Context, req *describePackage.Request) (*describePackage.Response, error)
	Complete(ctx context.Context, prompt string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
