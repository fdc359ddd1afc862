package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gitee.com/flycash/communication-platform/internal/errs"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const batchSize = 100

type CommunicationDAO interface {
	// CreateWithFanOut 在同一个事务里创建通讯、每个收件人的投递记录以及通知，要么全部成功要么全部回滚
	CreateWithFanOut(ctx context.Context, c Communication, recipients []CommunicationRecipient, notifications []Notification) (Communication, error)

	GetByID(ctx context.Context, id int64) (Communication, error)
	// FindRecipients 某条通讯的全部投递记录，按 id 升序
	FindRecipients(ctx context.Context, communicationID int64) ([]CommunicationRecipient, error)
	FindRecipient(ctx context.Context, communicationID int64, recipientID string) (CommunicationRecipient, error)

	// ListInbox 收件箱分页，返回当前页和总数
	ListInbox(ctx context.Context, recipientID string, status string, offset, limit int) ([]InboxRow, int64, error)
	// ListSent 发件箱分页，senderID 为空时不限发件人
	ListSent(ctx context.Context, senderID string, offset, limit int) ([]Communication, int64, error)
	// StatsByCommunicationIDs 按通讯聚合投递统计
	StatsByCommunicationIDs(ctx context.Context, ids []int64) (map[int64]RecipientStats, error)

	// MarkRead 只在未读时写入已读时间，返回最终的已读时间（毫秒）
	MarkRead(ctx context.Context, communicationID int64, recipientID string) (int64, error)
	UpdateArchived(ctx context.Context, communicationID int64, recipientID string, archived bool) error
	MarkDeleted(ctx context.Context, communicationID int64, recipientID string) error
}

// Communication 通讯表
type Communication struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:'通讯ID'"`
	SenderID string `gorm:"type:VARCHAR(50);NOT NULL;index:idx_sender_ctime,priority:1;comment:'发件人编号'"`
	Subject  string `gorm:"type:VARCHAR(200);NOT NULL;comment:'主题'"`
	Body     string `gorm:"type:LONGTEXT;NOT NULL;comment:'正文'"`
	Ctime    int64  `gorm:"index:idx_sender_ctime,priority:2;index:idx_ctime"`
}

func (Communication) TableName() string {
	return "communications"
}

// CommunicationRecipient 投递记录表，每个(通讯, 收件人)一行
type CommunicationRecipient struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	CommunicationID int64          `gorm:"NOT NULL;uniqueIndex:uk_communication_recipient,priority:1;comment:'通讯ID'"`
	Communication   *Communication `gorm:"foreignKey:CommunicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	RecipientID     string         `gorm:"type:VARCHAR(50);NOT NULL;uniqueIndex:uk_communication_recipient,priority:2;index:idx_recipient_ctime,priority:1;comment:'收件人编号'"`
	ReadAt          sql.NullInt64  `gorm:"comment:'已读时间，NULL 表示未读'"`
	Archived        bool           `gorm:"NOT NULL;comment:'是否归档'"`
	Deleted         bool           `gorm:"NOT NULL;comment:'是否从收件箱删除，不影响通讯本身'"`
	Ctime           int64          `gorm:"index:idx_recipient_ctime,priority:2"`
	Utime           int64
}

func (CommunicationRecipient) TableName() string {
	return "communication_recipients"
}

// InboxRow 收件箱中的一行
type InboxRow struct {
	Recipient     CommunicationRecipient
	Communication Communication
}

type RecipientStats struct {
	CommunicationID int64
	Total           int64
	ReadCount       int64
	ArchivedCount   int64
	DeletedCount    int64
}

type communicationDAO struct {
	db *egorm.Component
}

func NewCommunicationDAO(db *egorm.Component) CommunicationDAO {
	return &communicationDAO{
		db: db,
	}
}

func (d *communicationDAO) CreateWithFanOut(ctx context.Context, c Communication,
	recipients []CommunicationRecipient, notifications []Notification,
) (Communication, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now

	tx := d.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return Communication{}, tx.Error
	}
	// 提交之后再回滚是空操作，任何提前返回都会撤销整个事务
	defer tx.Rollback()

	if err := tx.Create(&c).Error; err != nil {
		return Communication{}, fmt.Errorf("创建通讯失败: %w", err)
	}

	for i := range recipients {
		recipients[i].CommunicationID = c.ID
		recipients[i].Ctime, recipients[i].Utime = now, now
	}
	if len(recipients) > 0 {
		if err := tx.CreateInBatches(&recipients, batchSize).Error; err != nil {
			return Communication{}, fmt.Errorf("创建投递记录失败: %w", err)
		}
	}

	for i := range notifications {
		notifications[i].Ctime = now
	}
	if len(notifications) > 0 {
		if err := tx.CreateInBatches(&notifications, batchSize).Error; err != nil {
			return Communication{}, fmt.Errorf("创建通知失败: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return Communication{}, fmt.Errorf("提交事务失败: %w", err)
	}
	return c, nil
}

func (d *communicationDAO) GetByID(ctx context.Context, id int64) (Communication, error) {
	var res Communication
	err := d.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&res).Error
	if err != nil {
		return Communication{}, err
	}
	if res.ID == 0 {
		return Communication{}, fmt.Errorf("%w: communication id=%d", errs.ErrNotFound, id)
	}
	return res, nil
}

func (d *communicationDAO) FindRecipients(ctx context.Context, communicationID int64) ([]CommunicationRecipient, error) {
	var res []CommunicationRecipient
	err := d.db.WithContext(ctx).
		Where("communication_id = ?", communicationID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *communicationDAO) FindRecipient(ctx context.Context, communicationID int64, recipientID string) (CommunicationRecipient, error) {
	var res CommunicationRecipient
	err := d.db.WithContext(ctx).
		Where("communication_id = ? AND recipient_id = ?", communicationID, recipientID).
		Limit(1).
		Find(&res).Error
	if err != nil {
		return CommunicationRecipient{}, err
	}
	if res.ID == 0 {
		return CommunicationRecipient{}, fmt.Errorf("%w: communication id=%d, recipient=%s",
			errs.ErrNotFound, communicationID, recipientID)
	}
	return res, nil
}

func (d *communicationDAO) inboxQuery(ctx context.Context, recipientID, status string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&CommunicationRecipient{}).
		Where("recipient_id = ?", recipientID)
	switch status {
	case "archived":
		return query.Where("archived = ? AND deleted = ?", true, false)
	case "unread":
		return query.Where("read_at IS NULL AND deleted = ? AND archived = ?", false, false)
	case "deleted":
		return query.Where("deleted = ?", true)
	default:
		return query.Where("deleted = ?", false)
	}
}

func (d *communicationDAO) ListInbox(ctx context.Context, recipientID, status string, offset, limit int) ([]InboxRow, int64, error) {
	var (
		eg    errgroup.Group
		total int64
		rows  []InboxRow
	)
	eg.Go(func() error {
		return d.inboxQuery(ctx, recipientID, status).Count(&total).Error
	})
	eg.Go(func() error {
		var recipients []CommunicationRecipient
		err := d.inboxQuery(ctx, recipientID, status).
			Order("ctime DESC, id DESC").
			Offset(offset).
			Limit(limit).
			Find(&recipients).Error
		if err != nil || len(recipients) == 0 {
			return err
		}

		ids := slice.Map(recipients, func(_ int, src CommunicationRecipient) int64 {
			return src.CommunicationID
		})
		var communications []Communication
		err = d.db.WithContext(ctx).Where("id IN ?", ids).Find(&communications).Error
		if err != nil {
			return err
		}
		communicationMap := make(map[int64]Communication, len(communications))
		for i := range communications {
			communicationMap[communications[i].ID] = communications[i]
		}

		rows = make([]InboxRow, 0, len(recipients))
		for i := range recipients {
			c, ok := communicationMap[recipients[i].CommunicationID]
			if !ok {
				// 通讯已被级联删除
				continue
			}
			rows = append(rows, InboxRow{Recipient: recipients[i], Communication: c})
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (d *communicationDAO) sentQuery(ctx context.Context, senderID string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Communication{})
	if senderID != "" {
		query = query.Where("sender_id = ?", senderID)
	}
	return query
}

func (d *communicationDAO) ListSent(ctx context.Context, senderID string, offset, limit int) ([]Communication, int64, error) {
	var (
		eg             errgroup.Group
		total          int64
		communications []Communication
	)
	eg.Go(func() error {
		return d.sentQuery(ctx, senderID).Count(&total).Error
	})
	eg.Go(func() error {
		return d.sentQuery(ctx, senderID).
			Order("ctime DESC, id DESC").
			Offset(offset).
			Limit(limit).
			Find(&communications).Error
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return communications, total, nil
}

func (d *communicationDAO) StatsByCommunicationIDs(ctx context.Context, ids []int64) (map[int64]RecipientStats, error) {
	res := make(map[int64]RecipientStats, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var stats []RecipientStats
	err := d.db.WithContext(ctx).Model(&CommunicationRecipient{}).
		Select("communication_id, COUNT(*) AS total, " +
			"SUM(CASE WHEN read_at IS NOT NULL THEN 1 ELSE 0 END) AS read_count, " +
			"SUM(CASE WHEN archived THEN 1 ELSE 0 END) AS archived_count, " +
			"SUM(CASE WHEN deleted THEN 1 ELSE 0 END) AS deleted_count").
		Where("communication_id IN ?", ids).
		Group("communication_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	for i := range stats {
		res[stats[i].CommunicationID] = stats[i]
	}
	return res, nil
}

func (d *communicationDAO) MarkRead(ctx context.Context, communicationID int64, recipientID string) (int64, error) {
	now := time.Now().UnixMilli()
	// 条件更新，避免先读后写丢失并发更新
	res := d.db.WithContext(ctx).Model(&CommunicationRecipient{}).
		Where("communication_id = ? AND recipient_id = ? AND read_at IS NULL", communicationID, recipientID).
		Updates(map[string]any{
			"read_at": now,
			"utime":   now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		return now, nil
	}

	// 已经读过，或者根本没有这条记录
	r, err := d.FindRecipient(ctx, communicationID, recipientID)
	if err != nil {
		return 0, err
	}
	return r.ReadAt.Int64, nil
}

func (d *communicationDAO) UpdateArchived(ctx context.Context, communicationID int64, recipientID string, archived bool) error {
	return d.updateRecipient(ctx, communicationID, recipientID, map[string]any{
		"archived": archived,
	})
}

func (d *communicationDAO) MarkDeleted(ctx context.Context, communicationID int64, recipientID string) error {
	return d.updateRecipient(ctx, communicationID, recipientID, map[string]any{
		"deleted": true,
	})
}

func (d *communicationDAO) updateRecipient(ctx context.Context, communicationID int64, recipientID string, updates map[string]any) error {
	updates["utime"] = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&CommunicationRecipient{}).
		Where("communication_id = ? AND recipient_id = ?", communicationID, recipientID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: communication id=%d, recipient=%s", errs.ErrNotFound, communicationID, recipientID)
	}
	return nil
}
