//go:build wireinject

package communication

import (
	"gitee.com/flycash/communication-platform/internal/repository"
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	communicationsvc "gitee.com/flycash/communication-platform/internal/service/communication"
	"gitee.com/flycash/communication-platform/internal/service/recipient"
	"gitee.com/flycash/communication-platform/internal/service/sequence"
	testioc "gitee.com/flycash/communication-platform/internal/test/ioc"
	"github.com/google/wire"
	"github.com/sony/sonyflake"
)

func newCommunicationRepository(d dao.CommunicationDAO, idGen *sonyflake.Sonyflake) repository.CommunicationRepository {
	return repository.NewCommunicationRepository(d, idGen)
}

func Init() *testioc.App {
	wire.Build(
		testioc.BaseSet,

		dao.NewMemberDAO,
		repository.NewMemberRepository,
		recipient.NewResolver,

		dao.NewCommunicationDAO,
		newCommunicationRepository,
		communicationsvc.NewDispatcher,
		communicationsvc.NewInboxService,

		dao.NewCounterDAO,
		repository.NewSequenceRepository,
		sequence.NewGenerator,

		wire.Struct(new(testioc.App), "*"),
	)
	return nil
}
