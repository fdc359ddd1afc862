package domain

import "time"

// NotificationKind 站内通知类型
type NotificationKind string

const (
	NotificationKindInfo         NotificationKind = "info"
	NotificationKindSuccess      NotificationKind = "success"
	NotificationKindWarning      NotificationKind = "warning"
	NotificationKindError        NotificationKind = "error"
	NotificationKindAnnouncement NotificationKind = "announcement"
)

const (
	NotificationTitleMaxLen   = 180
	NotificationMessageMaxLen = 500
)

func (k NotificationKind) String() string {
	return string(k)
}

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationKindInfo, NotificationKindSuccess, NotificationKindWarning,
		NotificationKindError, NotificationKindAnnouncement:
		return true
	default:
		return false
	}
}

// Notification 站内通知领域模型
// 与通讯记录之间没有外键关系，是一条独立的提醒
type Notification struct {
	ID          uint64
	RecipientID string
	Title       string
	Message     string
	Kind        NotificationKind
	Link        string
	Ctime       time.Time
	ReadAt      time.Time
}

// NewAnnouncement 根据通讯的主题和正文生成一条公告类型的通知
func NewAnnouncement(recipientID, subject, body, link string) Notification {
	return Notification{
		RecipientID: recipientID,
		Title:       TruncateRunes(subject, NotificationTitleMaxLen),
		Message:     Abbreviate(body, NotificationMessageMaxLen),
		Kind:        NotificationKindAnnouncement,
		Link:        link,
	}
}
