package repository

import (
	"context"

	"github.com/Lutefd/currency-widget/internal/model"
)

type LogRepository interface {
	SaveLog(ctx context.Context, log model.Log) error
	Close() error
}
