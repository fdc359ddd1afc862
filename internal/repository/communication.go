package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// IDGenerator 通知主键生成器，*sonyflake.Sonyflake 满足这个接口
type IDGenerator interface {
	NextID() (uint64, error)
}

// CommunicationRepository 通讯仓储接口
//
//go:generate mockgen -source=./communication.go -destination=./mocks/communication.mock.go -package=repomocks CommunicationRepository
type CommunicationRepository interface {
	// Create 原子地创建通讯、每个收件人的投递记录和对应的站内通知
	Create(ctx context.Context, c domain.Communication, recipientIDs []string, notifications []domain.Notification) (domain.Communication, error)

	GetByID(ctx context.Context, id int64) (domain.Communication, error)
	FindRecipients(ctx context.Context, communicationID int64) ([]domain.Recipient, error)
	FindRecipient(ctx context.Context, communicationID int64, recipientID string) (domain.Recipient, error)

	ListInbox(ctx context.Context, recipientID string, status domain.InboxStatus, page domain.Page) ([]domain.InboxItem, int64, error)
	// ListSent senderID 为空时列出所有人发送的通讯
	ListSent(ctx context.Context, senderID string, page domain.Page) ([]domain.SentItem, int64, error)

	// MarkRead 幂等，已读过的返回原来的已读时间
	MarkRead(ctx context.Context, communicationID int64, recipientID string) (time.Time, error)
	SetArchived(ctx context.Context, communicationID int64, recipientID string, archived bool) error
	SoftDelete(ctx context.Context, communicationID int64, recipientID string) error
}

type communicationRepository struct {
	dao   dao.CommunicationDAO
	idGen IDGenerator
}

func NewCommunicationRepository(d dao.CommunicationDAO, idGen IDGenerator) CommunicationRepository {
	return &communicationRepository{
		dao:   d,
		idGen: idGen,
	}
}

func (r *communicationRepository) Create(ctx context.Context, c domain.Communication,
	recipientIDs []string, notifications []domain.Notification,
) (domain.Communication, error) {
	recipients := slice.Map(recipientIDs, func(_ int, src string) dao.CommunicationRecipient {
		return dao.CommunicationRecipient{RecipientID: src}
	})
	entities := make([]dao.Notification, 0, len(notifications))
	for i := range notifications {
		id, err := r.idGen.NextID()
		if err != nil {
			return domain.Communication{}, fmt.Errorf("生成通知ID失败: %w", err)
		}
		n := r.toNotificationEntity(notifications[i])
		n.ID = id
		entities = append(entities, n)
	}

	created, err := r.dao.CreateWithFanOut(ctx, r.toEntity(c), recipients, entities)
	if err != nil {
		return domain.Communication{}, err
	}
	return r.toDomain(created), nil
}

func (r *communicationRepository) GetByID(ctx context.Context, id int64) (domain.Communication, error) {
	c, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Communication{}, err
	}
	return r.toDomain(c), nil
}

func (r *communicationRepository) FindRecipients(ctx context.Context, communicationID int64) ([]domain.Recipient, error) {
	recipients, err := r.dao.FindRecipients(ctx, communicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(recipients, func(_ int, src dao.CommunicationRecipient) domain.Recipient {
		return r.toRecipientDomain(src)
	}), nil
}

func (r *communicationRepository) FindRecipient(ctx context.Context, communicationID int64, recipientID string) (domain.Recipient, error) {
	recipient, err := r.dao.FindRecipient(ctx, communicationID, recipientID)
	if err != nil {
		return domain.Recipient{}, err
	}
	return r.toRecipientDomain(recipient), nil
}

func (r *communicationRepository) ListInbox(ctx context.Context, recipientID string,
	status domain.InboxStatus, page domain.Page,
) ([]domain.InboxItem, int64, error) {
	rows, total, err := r.dao.ListInbox(ctx, recipientID, status.String(), page.Offset, page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(rows, func(_ int, src dao.InboxRow) domain.InboxItem {
		return domain.InboxItem{
			Communication: r.toDomain(src.Communication),
			Recipient:     r.toRecipientDomain(src.Recipient),
		}
	}), total, nil
}

func (r *communicationRepository) ListSent(ctx context.Context, senderID string, page domain.Page) ([]domain.SentItem, int64, error) {
	communications, total, err := r.dao.ListSent(ctx, senderID, page.Offset, page.Limit)
	if err != nil {
		return nil, 0, err
	}
	ids := slice.Map(communications, func(_ int, src dao.Communication) int64 {
		return src.ID
	})
	stats, err := r.dao.StatsByCommunicationIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(communications, func(_ int, src dao.Communication) domain.SentItem {
		s := stats[src.ID]
		return domain.SentItem{
			Communication: r.toDomain(src),
			Stats: domain.RecipientStats{
				Total:    s.Total,
				Read:     s.ReadCount,
				Archived: s.ArchivedCount,
				Deleted:  s.DeletedCount,
			},
		}
	}), total, nil
}

func (r *communicationRepository) MarkRead(ctx context.Context, communicationID int64, recipientID string) (time.Time, error) {
	readAt, err := r.dao.MarkRead(ctx, communicationID, recipientID)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(readAt), nil
}

func (r *communicationRepository) SetArchived(ctx context.Context, communicationID int64, recipientID string, archived bool) error {
	return r.dao.UpdateArchived(ctx, communicationID, recipientID, archived)
}

func (r *communicationRepository) SoftDelete(ctx context.Context, communicationID int64, recipientID string) error {
	return r.dao.MarkDeleted(ctx, communicationID, recipientID)
}

func (r *communicationRepository) toEntity(c domain.Communication) dao.Communication {
	return dao.Communication{
		ID:       c.ID,
		SenderID: c.SenderID,
		Subject:  c.Subject,
		Body:     c.Body,
	}
}

func (r *communicationRepository) toDomain(c dao.Communication) domain.Communication {
	return domain.Communication{
		ID:       c.ID,
		SenderID: c.SenderID,
		Subject:  c.Subject,
		Body:     c.Body,
		Ctime:    time.UnixMilli(c.Ctime),
	}
}

func (r *communicationRepository) toRecipientDomain(rc dao.CommunicationRecipient) domain.Recipient {
	res := domain.Recipient{
		ID:              rc.ID,
		CommunicationID: rc.CommunicationID,
		RecipientID:     rc.RecipientID,
		Archived:        rc.Archived,
		Deleted:         rc.Deleted,
		Ctime:           time.UnixMilli(rc.Ctime),
		Utime:           time.UnixMilli(rc.Utime),
	}
	if rc.ReadAt.Valid {
		res.ReadAt = time.UnixMilli(rc.ReadAt.Int64)
	}
	return res
}

func (r *communicationRepository) toNotificationEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Kind:        n.Kind.String(),
		Link: sql.NullString{
			String: n.Link,
			Valid:  n.Link != "",
		},
	}
}
