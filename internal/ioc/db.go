package ioc

import (
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	"github.com/ego-component/egorm"
)

// InitDB DSN 需要带上 clientFoundRows=true，标记已读等条件更新依赖匹配行数
func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
