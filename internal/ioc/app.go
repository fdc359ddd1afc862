package ioc

import (
	"context"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/server/egin"
	"github.com/hashicorp/go-multierror"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Web    *egin.Component
	DB     *egorm.Component
	Redis  *redis.Client
	Tracer *trace.TracerProvider
}

// Close 释放外部资源，所有错误都会返回
func (a *App) Close(ctx context.Context) error {
	var err *multierror.Error
	if a.Tracer != nil {
		err = multierror.Append(err, a.Tracer.Shutdown(ctx))
	}
	if a.Redis != nil {
		err = multierror.Append(err, a.Redis.Close())
	}
	if a.DB != nil {
		sqlDB, err1 := a.DB.DB()
		if err1 == nil {
			err1 = sqlDB.Close()
		}
		err = multierror.Append(err, err1)
	}
	return err.ErrorOrNil()
}
