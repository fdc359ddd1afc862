//go:build wireinject

package ioc

import (
	"gitee.com/flycash/communication-platform/internal/ioc"
	"gitee.com/flycash/communication-platform/internal/repository"
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	"gitee.com/flycash/communication-platform/internal/service/communication"
	"gitee.com/flycash/communication-platform/internal/service/recipient"
	"gitee.com/flycash/communication-platform/internal/service/sequence"
	communicationweb "gitee.com/flycash/communication-platform/internal/web/communication"
	sequenceweb "gitee.com/flycash/communication-platform/internal/web/sequence"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitIDGenerator,
		ioc.InitRedisClient,
		ioc.InitZipkinTracer,
		ioc.InitJWTAuth,
		ioc.InitSendLimiter,
		wire.Bind(new(redis.Cmdable), new(*redis.Client)),
	)
	memberSet = wire.NewSet(
		repository.NewMemberRepository,
		dao.NewMemberDAO,
	)
	communicationSvcSet = wire.NewSet(
		newDispatcher,
		communication.NewInboxService,
		recipient.NewResolver,
		newCommunicationRepository,
		dao.NewCommunicationDAO,
	)
	sequenceSvcSet = wire.NewSet(
		sequence.NewGenerator,
		repository.NewSequenceRepository,
		dao.NewCounterDAO,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 成员目录
		memberSet,

		// 通讯
		communicationSvcSet,
		communicationweb.NewHandler,

		// 序列号
		sequenceSvcSet,
		sequenceweb.NewHandler,

		ioc.InitWeb,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
