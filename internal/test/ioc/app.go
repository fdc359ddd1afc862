package ioc

import (
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	communicationsvc "gitee.com/flycash/communication-platform/internal/service/communication"
	sequencesvc "gitee.com/flycash/communication-platform/internal/service/sequence"
	"github.com/ego-component/egorm"
)

// App 集成测试用到的组件，直接连真实的 MySQL
type App struct {
	DB *egorm.Component

	MemberDAO        dao.MemberDAO
	CommunicationDAO dao.CommunicationDAO

	Dispatcher communicationsvc.Dispatcher
	InboxSvc   communicationsvc.InboxService
	Generator  sequencesvc.Generator
}
