package dao

import (
	"context"
	"database/sql"

	"gitee.com/flycash/communication-platform/internal/domain"
	"github.com/ego-component/egorm"
)

// MemberDAO 成员目录只读访问
type MemberDAO interface {
	// Find 按条件查找有外部编号的成员，按 id 升序
	Find(ctx context.Context, filter domain.MemberFilter) ([]Member, error)
}

// Member 成员目录表
type Member struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	ExternalID   sql.NullInt64  `gorm:"index:idx_external_id;comment:'外部编号，为空的成员不会收到通讯'"`
	FirstName    string         `gorm:"type:VARCHAR(150);NOT NULL;comment:'名'"`
	LastName     string         `gorm:"type:VARCHAR(150);NOT NULL;comment:'姓'"`
	Tier         int            `gorm:"NOT NULL;index:idx_tier;comment:'层级，1 为最高管理层级'"`
	Email        sql.NullString `gorm:"type:VARCHAR(180)"`
	Organization string         `gorm:"type:VARCHAR(150);NOT NULL;comment:'所属组织'"`
	Ctime        int64
	Utime        int64
}

func (Member) TableName() string {
	return "members"
}

type memberDAO struct {
	db *egorm.Component
}

func NewMemberDAO(db *egorm.Component) MemberDAO {
	return &memberDAO{db: db}
}

func (d *memberDAO) Find(ctx context.Context, filter domain.MemberFilter) ([]Member, error) {
	query := d.db.WithContext(ctx).Model(&Member{}).Where("external_id IS NOT NULL")
	if len(filter.ExternalIDs) > 0 {
		query = query.Where("external_id IN ?", filter.ExternalIDs)
	}
	if filter.Tier != nil {
		query = query.Where("tier = ?", *filter.Tier)
	}
	if filter.ExcludeAdmins {
		query = query.Where("tier <> ?", domain.AdminTier)
	}
	var res []Member
	err := query.Order("id ASC").Find(&res).Error
	return res, err
}
