package communication

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
)

// FlexString 兼容字符串和数字两种写法，例如 "7" 和 7
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f *FlexString) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// SendReq 字段名保留了旧客户端使用的别名
type SendReq struct {
	Subject       string       `json:"subject"`
	Body          string       `json:"body"`
	Link          string       `json:"link"`
	RecipientMode string       `json:"recipientMode"`
	Mode          string       `json:"mode"`
	RecipientIDs  []FlexString `json:"recipientIds"`
	Recipients    []FlexString `json:"recipients"`
	TargetTier    *FlexString  `json:"targetTier"`
	Tier          *FlexString  `json:"tier"`
	IncludeAdmins bool         `json:"includeAdmins"`
}

const defaultMode = "all"

func (r SendReq) toDomain() domain.SendRequest {
	mode := firstNonEmpty(r.RecipientMode, r.Mode, defaultMode)

	ids := r.RecipientIDs
	if len(ids) == 0 {
		ids = r.Recipients
	}
	recipients := make([]string, 0, len(ids))
	for i := range ids {
		recipients = append(recipients, string(ids[i]))
	}

	tier := r.TargetTier
	if tier == nil || tier.String() == "" {
		tier = r.Tier
	}

	return domain.SendRequest{
		Subject: r.Subject,
		Body:    r.Body,
		Link:    r.Link,
		Target: domain.TargetSpec{
			Mode:          mode,
			Tier:          tier.String(),
			Recipients:    recipients,
			IncludeAdmins: r.IncludeAdmins,
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

type RecipientPreview struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"displayName"`
	Tier        int     `json:"tier"`
	Email       string  `json:"email,omitempty"`
}

type SendResp struct {
	ID             int64              `json:"id"`
	Subject        string             `json:"subject"`
	Body           string             `json:"body"`
	SenderID       string             `json:"senderId"`
	Ctime          int64              `json:"ctime"`
	RecipientCount int                `json:"recipientCount"`
	Preview        []RecipientPreview `json:"recipientsPreview"`
}

type Stats struct {
	Total    int64 `json:"total"`
	Read     int64 `json:"read"`
	Archived int64 `json:"archived"`
	Deleted  int64 `json:"deleted"`
}

type SentItem struct {
	ID       int64  `json:"id"`
	Subject  string `json:"subject"`
	SenderID string `json:"senderId"`
	Ctime    int64  `json:"ctime"`
	Body     string `json:"body,omitempty"`
	Stats    Stats  `json:"stats"`
}

type InboxItem struct {
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	BodyPreview string `json:"bodyPreview"`
	Body        string `json:"body,omitempty"`
	SenderID    string `json:"senderId"`
	Ctime       int64  `json:"ctime"`
	ReadAt      *int64 `json:"readAt"`
	Archived    bool   `json:"archived"`
	Deleted     bool   `json:"deleted"`
}

type ListResp[T any] struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Items  []T   `json:"items"`
}

// RecipientState 某个收件人的投递状态
type RecipientState struct {
	ID          int64  `json:"id"`
	RecipientID string `json:"recipientId"`
	ReadAt      *int64 `json:"readAt"`
	Archived    bool   `json:"archived"`
	Deleted     bool   `json:"deleted"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

// RecipientMember 目录信息，成员已经不在目录里时为 null
type RecipientMember struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DisplayName  string `json:"displayName"`
	Tier         int    `json:"tier"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

type AdminRecipient struct {
	RecipientState
	Member *RecipientMember `json:"member"`
}

type DetailResp struct {
	ID         int64            `json:"id"`
	Subject    string           `json:"subject"`
	Body       string           `json:"body"`
	SenderID   string           `json:"senderId"`
	Ctime      int64            `json:"ctime"`
	AdminView  bool             `json:"adminView"`
	Stats      *Stats           `json:"stats,omitempty"`
	Recipients []AdminRecipient `json:"recipients,omitempty"`
	Self       *RecipientState  `json:"self,omitempty"`
}

type ArchiveReq struct {
	Archived *bool `json:"archived"`
}

type ReadResp struct {
	ID     int64 `json:"id"`
	ReadAt int64 `json:"readAt"`
}

type StateResp struct {
	ID       int64 `json:"id"`
	Archived *bool `json:"archived,omitempty"`
	Deleted  bool  `json:"deleted,omitempty"`
}

func toSendResp(res domain.DispatchResult) SendResp {
	preview := make([]RecipientPreview, 0, len(res.Preview))
	for _, m := range res.Preview {
		p := RecipientPreview{ID: m.ExternalID, Tier: m.Tier, Email: m.Email}
		if name := m.DisplayName(); name != "" {
			p.DisplayName = &name
		}
		preview = append(preview, p)
	}
	return SendResp{
		ID:             res.Communication.ID,
		Subject:        res.Communication.Subject,
		Body:           res.Communication.Body,
		SenderID:       res.Communication.SenderID,
		Ctime:          res.Communication.Ctime.UnixMilli(),
		RecipientCount: res.RecipientCount,
		Preview:        preview,
	}
}

func toStats(s domain.RecipientStats) Stats {
	return Stats{Total: s.Total, Read: s.Read, Archived: s.Archived, Deleted: s.Deleted}
}

func toSentItem(item domain.SentItem, includeBody bool) SentItem {
	res := SentItem{
		ID:       item.Communication.ID,
		Subject:  item.Communication.Subject,
		SenderID: item.Communication.SenderID,
		Ctime:    item.Communication.Ctime.UnixMilli(),
		Stats:    toStats(item.Stats),
	}
	if includeBody {
		res.Body = item.Communication.Body
	}
	return res
}

func toInboxItem(item domain.InboxItem, includeBody bool) InboxItem {
	res := InboxItem{
		ID:          item.Communication.ID,
		Subject:     item.Communication.Subject,
		BodyPreview: item.Communication.BodyPreview(),
		SenderID:    item.Communication.SenderID,
		Ctime:       item.Communication.Ctime.UnixMilli(),
		ReadAt:      millisOrNil(item.Recipient.ReadAt),
		Archived:    item.Recipient.Archived,
		Deleted:     item.Recipient.Deleted,
	}
	if includeBody {
		res.Body = item.Communication.Body
	}
	return res
}

func toRecipientState(r domain.Recipient) RecipientState {
	return RecipientState{
		ID:          r.ID,
		RecipientID: r.RecipientID,
		ReadAt:      millisOrNil(r.ReadAt),
		Archived:    r.Archived,
		Deleted:     r.Deleted,
		Ctime:       r.Ctime.UnixMilli(),
		Utime:       r.Utime.UnixMilli(),
	}
}

func toDetailResp(d domain.CommunicationDetail) DetailResp {
	res := DetailResp{
		ID:        d.Communication.ID,
		Subject:   d.Communication.Subject,
		Body:      d.Communication.Body,
		SenderID:  d.Communication.SenderID,
		Ctime:     d.Communication.Ctime.UnixMilli(),
		AdminView: d.AdminView,
	}
	if !d.AdminView {
		self := toRecipientState(d.Self)
		res.Self = &self
		return res
	}

	stats := toStats(d.Stats)
	res.Stats = &stats
	res.Recipients = make([]AdminRecipient, 0, len(d.Recipients))
	for _, r := range d.Recipients {
		ar := AdminRecipient{RecipientState: toRecipientState(r.Recipient)}
		if r.Member != nil {
			ar.Member = &RecipientMember{
				FirstName:    r.Member.FirstName,
				LastName:     r.Member.LastName,
				DisplayName:  r.Member.DisplayName(),
				Tier:         r.Member.Tier,
				Email:        r.Member.Email,
				Organization: r.Member.Organization,
			}
		}
		res.Recipients = append(res.Recipients, ar)
	}
	return res
}

func millisOrNil(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
