package main

import (
	"context"
	"time"

	"gitee.com/flycash/communication-platform/cmd/platform/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

func main() {
	// ego.New 负责加载配置，必须在初始化依赖之前
	egoApp := ego.New()
	app := ioc.InitApp()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Close(ctx); err != nil {
			elog.Error("释放资源失败", elog.FieldErr(err))
		}
	}()

	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
