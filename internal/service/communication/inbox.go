package communication

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// InboxService 收件箱与发件箱，除管理员视图外都只作用于调用方自己的投递记录
//
//go:generate mockgen -source=./inbox.go -destination=./mocks/inbox.mock.go -package=communicationmocks InboxService
type InboxService interface {
	ListInbox(ctx context.Context, caller domain.Caller, status domain.InboxStatus, page domain.Page) ([]domain.InboxItem, int64, error)
	// GetDetail 管理员能看到全部收件人和统计，其他人只能看到自己的那一行
	GetDetail(ctx context.Context, caller domain.Caller, id int64) (domain.CommunicationDetail, error)
	// MarkRead 幂等，重复调用返回第一次的已读时间
	MarkRead(ctx context.Context, caller domain.Caller, id int64) (time.Time, error)
	SetArchived(ctx context.Context, caller domain.Caller, id int64, archived bool) error
	// SoftDelete 只是从收件箱里移除，不影响通讯本身
	SoftDelete(ctx context.Context, caller domain.Caller, id int64) error
	ListSent(ctx context.Context, caller domain.Caller, scope domain.SentScope, page domain.Page) ([]domain.SentItem, int64, error)
}

type inboxService struct {
	repo    repository.CommunicationRepository
	members repository.MemberRepository
	logger  *elog.Component
}

func NewInboxService(repo repository.CommunicationRepository, members repository.MemberRepository) InboxService {
	return &inboxService{
		repo:    repo,
		members: members,
		logger:  elog.DefaultLogger,
	}
}

func (s *inboxService) recipientID(caller domain.Caller) (string, error) {
	id := caller.RecipientID()
	if id == "" {
		return "", fmt.Errorf("%w: 调用方没有关联的成员编号", errs.ErrValidation)
	}
	return id, nil
}

func (s *inboxService) ListInbox(ctx context.Context, caller domain.Caller,
	status domain.InboxStatus, page domain.Page,
) ([]domain.InboxItem, int64, error) {
	rid, err := s.recipientID(caller)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.ListInbox(ctx, rid, status, page)
}

func (s *inboxService) GetDetail(ctx context.Context, caller domain.Caller, id int64) (domain.CommunicationDetail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.CommunicationDetail{}, err
	}

	if caller.IsAdmin() {
		return s.adminDetail(ctx, c)
	}

	rid := caller.RecipientID()
	if rid == "" {
		return domain.CommunicationDetail{}, fmt.Errorf("%w: communication id=%d", errs.ErrForbidden, id)
	}
	self, err := s.repo.FindRecipient(ctx, id, rid)
	if errors.Is(err, errs.ErrNotFound) {
		return domain.CommunicationDetail{}, fmt.Errorf("%w: communication id=%d, recipient=%s", errs.ErrForbidden, id, rid)
	}
	if err != nil {
		return domain.CommunicationDetail{}, err
	}
	return domain.CommunicationDetail{
		Communication: c,
		Self:          self,
	}, nil
}

func (s *inboxService) adminDetail(ctx context.Context, c domain.Communication) (domain.CommunicationDetail, error) {
	recipients, err := s.repo.FindRecipients(ctx, c.ID)
	if err != nil {
		return domain.CommunicationDetail{}, err
	}

	memberMap := s.lookupMembers(ctx, recipients)
	details := slice.Map(recipients, func(_ int, src domain.Recipient) domain.RecipientDetail {
		d := domain.RecipientDetail{Recipient: src}
		if m, ok := memberMap[src.RecipientID]; ok {
			d.Member = &m
		}
		return d
	})

	return domain.CommunicationDetail{
		Communication: c,
		AdminView:     true,
		Recipients:    details,
		Stats:         domain.ComputeStats(recipients),
	}, nil
}

// lookupMembers 尽力而为，查询失败时只记录日志，收件人照常返回
func (s *inboxService) lookupMembers(ctx context.Context, recipients []domain.Recipient) map[string]domain.Member {
	ids := make([]uint64, 0, len(recipients))
	for i := range recipients {
		id, err := strconv.ParseUint(recipients[i].RecipientID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	members, err := s.members.FindByExternalIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("查询收件人目录信息失败", elog.Int("count", len(ids)), elog.FieldErr(err))
		return map[string]domain.Member{}
	}
	res := make(map[string]domain.Member, len(members))
	for i := range members {
		res[members[i].ExternalID] = members[i]
	}
	return res
}

func (s *inboxService) MarkRead(ctx context.Context, caller domain.Caller, id int64) (time.Time, error) {
	rid, err := s.recipientID(caller)
	if err != nil {
		return time.Time{}, err
	}
	return s.repo.MarkRead(ctx, id, rid)
}

func (s *inboxService) SetArchived(ctx context.Context, caller domain.Caller, id int64, archived bool) error {
	rid, err := s.recipientID(caller)
	if err != nil {
		return err
	}
	return s.repo.SetArchived(ctx, id, rid, archived)
}

func (s *inboxService) SoftDelete(ctx context.Context, caller domain.Caller, id int64) error {
	rid, err := s.recipientID(caller)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id, rid)
}

func (s *inboxService) ListSent(ctx context.Context, caller domain.Caller,
	scope domain.SentScope, page domain.Page,
) ([]domain.SentItem, int64, error) {
	senderID := ""
	if scope != domain.SentScopeAll {
		senderID = caller.SenderID()
	}
	return s.repo.ListSent(ctx, senderID, page)
}
