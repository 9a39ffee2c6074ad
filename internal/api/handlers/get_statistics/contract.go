package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	computeStatistics "github.com/m04kA/SMC-HotelOps/internal/usecase/compute_statistics"
)

type ComputeStatisticsUseCase interface {
	Execute(ctx context.Context, actor domain.Actor) (*computeStatistics.Statistics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
