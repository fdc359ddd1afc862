package dao

import (
	"context"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterDAO 具名计数器
type CounterDAO interface {
	// Incr 原子地把计数器加一并返回新值，计数器不存在时从 1 开始
	Incr(ctx context.Context, name string) (uint64, error)
}

// Counter 计数器表
type Counter struct {
	Name string `gorm:"type:VARCHAR(191);primaryKey;comment:'计数器名称'"`
	Seq  uint64 `gorm:"type:BIGINT UNSIGNED;NOT NULL;comment:'当前值'"`
}

func (Counter) TableName() string {
	return "counters"
}

// 并发首次创建同一个计数器时可能死锁，重试即可
const maxIncrAttempts = 3

type counterDAO struct {
	db *egorm.Component
}

func NewCounterDAO(db *egorm.Component) CounterDAO {
	return &counterDAO{db: db}
}

func (d *counterDAO) Incr(ctx context.Context, name string) (uint64, error) {
	var (
		seq uint64
		err error
	)
	for i := 0; i < maxIncrAttempts; i++ {
		seq, err = d.incr(ctx, name)
		if !isDeadlockError(err) {
			return seq, err
		}
	}
	return 0, err
}

func (d *counterDAO) incr(ctx context.Context, name string) (uint64, error) {
	tx := d.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}
	defer tx.Rollback()

	// INSERT ... ON DUPLICATE KEY UPDATE 会给这一行加排他锁，同名计数器串行，不同名互不影响
	err := tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"seq": gorm.Expr("`seq` + 1"),
		}),
	}).Create(&Counter{Name: name, Seq: 1}).Error
	if err != nil {
		return 0, err
	}

	var c Counter
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Limit(1).
		Find(&c).Error
	if err != nil {
		return 0, err
	}

	if err = tx.Commit().Error; err != nil {
		return 0, err
	}
	return c.Seq, nil
}
