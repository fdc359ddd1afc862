package dao

import "github.com/ego-component/egorm"

// InitTables 建表，members 由目录服务维护，这里只保证它存在
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Member{},
		&Communication{},
		&CommunicationRecipient{},
		&Notification{},
		&Counter{},
	)
}
