package dao

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Notification 站内通知表，主键由雪花算法生成
type Notification struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement:false;comment:'雪花算法ID'"`
	RecipientID string         `gorm:"type:VARCHAR(50);NOT NULL;index:idx_recipient_ctime,priority:1;comment:'收件人编号'"`
	Title       string         `gorm:"type:VARCHAR(180);NOT NULL;comment:'标题'"`
	Message     string         `gorm:"type:VARCHAR(500);NOT NULL;comment:'内容摘要'"`
	Kind        string         `gorm:"type:ENUM('info','success','warning','error','announcement');NOT NULL;comment:'通知类型'"`
	Link        sql.NullString `gorm:"type:VARCHAR(500);comment:'跳转链接'"`
	ReadAt      sql.NullInt64  `gorm:"comment:'已读时间'"`
	Ctime       int64          `gorm:"index:idx_recipient_ctime,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}

// isDeadlockError 检查是否是 InnoDB 死锁错误
func isDeadlockError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const deadlockErrNo uint16 = 1213
		return me.Number == deadlockErrNo
	}
	return false
}
