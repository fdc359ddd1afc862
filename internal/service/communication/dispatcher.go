package communication

import (
	"context"
	"fmt"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/repository"
	"gitee.com/flycash/communication-platform/internal/service/recipient"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

// Dispatcher 群发通讯
//
//go:generate mockgen -source=./dispatcher.go -destination=./mocks/dispatcher.mock.go -package=communicationmocks Dispatcher
type Dispatcher interface {
	// Send 校验、解析收件人，然后在一个事务里写入通讯、投递记录和通知
	Send(ctx context.Context, caller domain.Caller, req domain.SendRequest) (domain.DispatchResult, error)
}

type dispatcher struct {
	resolver recipient.Resolver
	repo     repository.CommunicationRepository
	logger   *elog.Component
}

func NewDispatcher(resolver recipient.Resolver, repo repository.CommunicationRepository) Dispatcher {
	return &dispatcher{
		resolver: resolver,
		repo:     repo,
		logger:   elog.DefaultLogger,
	}
}

func (d *dispatcher) Send(ctx context.Context, caller domain.Caller, req domain.SendRequest) (domain.DispatchResult, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return domain.DispatchResult{}, err
	}

	members, err := d.resolver.Resolve(ctx, req.Target)
	if err != nil {
		return domain.DispatchResult{}, err
	}
	if len(members) == 0 {
		return domain.DispatchResult{}, fmt.Errorf("%w: mode=%s", errs.ErrNoRecipients, req.Target.Mode)
	}

	recipientIDs := slice.Map(members, func(_ int, src domain.Member) string {
		return src.ExternalID
	})
	notifications := slice.Map(members, func(_ int, src domain.Member) domain.Notification {
		return domain.NewAnnouncement(src.ExternalID, req.Subject, req.Body, req.Link)
	})

	c, err := d.repo.Create(ctx, domain.Communication{
		SenderID: caller.SenderID(),
		Subject:  req.Subject,
		Body:     req.Body,
	}, recipientIDs, notifications)
	if err != nil {
		d.logger.Error("群发通讯失败",
			elog.String("sender", caller.SenderID()),
			elog.Int("recipients", len(members)),
			elog.FieldErr(err))
		return domain.DispatchResult{}, err
	}

	d.logger.Info("群发通讯成功",
		elog.Int64("communicationId", c.ID),
		elog.String("sender", c.SenderID),
		elog.Int("recipients", len(members)))

	return domain.DispatchResult{
		Communication:  c,
		RecipientCount: len(members),
		Preview:        members[:min(len(members), domain.PreviewRecipients)],
	}, nil
}
