package ioc

import (
	"gitee.com/flycash/communication-platform/internal/repository"
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	"gitee.com/flycash/communication-platform/internal/service/communication"
	"gitee.com/flycash/communication-platform/internal/service/recipient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/sonyflake"
)

// newDispatcher 链路追踪在最外层，指标在内层
func newDispatcher(resolver recipient.Resolver, repo repository.CommunicationRepository) communication.Dispatcher {
	d := communication.NewDispatcher(resolver, repo)
	return communication.NewTracingDispatcher(
		communication.NewMetricsDispatcher(d, prometheus.DefaultRegisterer))
}

func newCommunicationRepository(d dao.CommunicationDAO, idGen *sonyflake.Sonyflake) repository.CommunicationRepository {
	return repository.NewCommunicationRepository(d, idGen)
}
