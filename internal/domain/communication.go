package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gitee.com/flycash/communication-platform/internal/errs"
)

const (
	SubjectMaxLen     = 200
	BodyPreviewMaxLen = 200
	LinkMaxLen        = 500
	PreviewRecipients = 5

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Communication 一条群发通讯
type Communication struct {
	ID       int64
	SenderID string
	Subject  string
	Body     string
	Ctime    time.Time
}

// BodyPreview 列表里展示的正文摘要
func (c Communication) BodyPreview() string {
	return Abbreviate(c.Body, BodyPreviewMaxLen)
}

// Recipient 某个收件人对某条通讯的投递状态
// 已读与归档/删除是两条相互独立的轴
type Recipient struct {
	ID              int64
	CommunicationID int64
	RecipientID     string
	ReadAt          time.Time // 零值表示未读
	Archived        bool
	Deleted         bool
	Ctime           time.Time
	Utime           time.Time
}

func (r Recipient) IsRead() bool {
	return !r.ReadAt.IsZero()
}

// RecipientStats 一条通讯的投递统计
type RecipientStats struct {
	Total    int64
	Read     int64
	Archived int64
	Deleted  int64
}

func ComputeStats(recipients []Recipient) RecipientStats {
	stats := RecipientStats{Total: int64(len(recipients))}
	for i := range recipients {
		if recipients[i].IsRead() {
			stats.Read++
		}
		if recipients[i].Archived {
			stats.Archived++
		}
		if recipients[i].Deleted {
			stats.Deleted++
		}
	}
	return stats
}

// InboxStatus 收件箱过滤条件
type InboxStatus string

const (
	InboxStatusActive   InboxStatus = "active"   // deleted = false
	InboxStatusUnread   InboxStatus = "unread"   // read_at IS NULL AND deleted = false AND archived = false
	InboxStatusArchived InboxStatus = "archived" // archived = true AND deleted = false
	InboxStatusDeleted  InboxStatus = "deleted"  // deleted = true
)

// ParseInboxStatus 不认识的取值按 active 处理
func ParseInboxStatus(s string) InboxStatus {
	switch st := InboxStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case InboxStatusUnread, InboxStatusArchived, InboxStatusDeleted:
		return st
	default:
		return InboxStatusActive
	}
}

func (s InboxStatus) String() string {
	return string(s)
}

// SentScope 发件箱范围
type SentScope string

const (
	SentScopeMine SentScope = "mine"
	SentScopeAll  SentScope = "all"
)

func ParseSentScope(s string) SentScope {
	if SentScope(strings.ToLower(strings.TrimSpace(s))) == SentScopeAll {
		return SentScopeAll
	}
	return SentScopeMine
}

// Page 分页参数
type Page struct {
	Limit  int
	Offset int
}

// NewPage limit 非正数时取默认值，且不超过上限；offset 不小于 0
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return Page{
		Limit:  min(limit, MaxPageLimit),
		Offset: max(offset, 0),
	}
}

// InboxItem 收件箱中的一行：投递状态加上通讯概要
type InboxItem struct {
	Communication Communication
	Recipient     Recipient
}

// SentItem 发件箱中的一行
type SentItem struct {
	Communication Communication
	Stats         RecipientStats
}

// RecipientDetail 管理员视角下的收件人，Member 为空说明目录里已经找不到这个人
type RecipientDetail struct {
	Recipient Recipient
	Member    *Member
}

// CommunicationDetail 通讯详情
// AdminView 为 true 时 Recipients 和 Stats 有效，否则 Self 是调用方自己的投递状态
type CommunicationDetail struct {
	Communication Communication
	AdminView     bool
	Recipients    []RecipientDetail
	Stats         RecipientStats
	Self          Recipient
}

// SendRequest 发送一条通讯
type SendRequest struct {
	Subject string
	Body    string
	Link    string
	Target  TargetSpec
}

// Normalize 去掉首尾空白
func (r SendRequest) Normalize() SendRequest {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Body = strings.TrimSpace(r.Body)
	r.Link = strings.TrimSpace(r.Link)
	return r
}

func (r SendRequest) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("%w: 主题不能为空", errs.ErrValidation)
	}
	if n := utf8.RuneCountInString(r.Subject); n > SubjectMaxLen {
		return fmt.Errorf("%w: 主题超过 %d 个字符, 实际 %d", errs.ErrValidation, SubjectMaxLen, n)
	}
	if r.Body == "" {
		return fmt.Errorf("%w: 正文不能为空", errs.ErrValidation)
	}
	if n := utf8.RuneCountInString(r.Link); n > LinkMaxLen {
		return fmt.Errorf("%w: 链接超过 %d 个字符, 实际 %d", errs.ErrValidation, LinkMaxLen, n)
	}
	return nil
}

// DispatchResult 发送结果
// Preview 只用于调用方确认，不能当作完整的收件人列表
type DispatchResult struct {
	Communication  Communication
	RecipientCount int
	Preview        []Member
}
