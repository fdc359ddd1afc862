package domain

import (
	"strconv"
	"strings"
)

// AdminTier 最高管理层级
const AdminTier = 1

// Member 目录中的成员，通讯的收件人来自这里
type Member struct {
	ID           int64
	ExternalID   string // 规范化后的外部编号，没有编号时为空
	FirstName    string
	LastName     string
	Tier         int
	Email        string
	Organization string
}

// DisplayName 名和姓拼接，都为空时返回空串
func (m Member) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{m.FirstName, m.LastName} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// MemberFilter 目录查询条件
// 外部编号为空的成员永远不会被选中
type MemberFilter struct {
	// ExternalIDs 非空时只查这些编号
	ExternalIDs []uint64
	// Tier 非空时只查这一层级
	Tier *int
	// ExcludeAdmins 排除最高管理层级
	ExcludeAdmins bool
}

// NormalizeIdentifier 外部编号的规范形式：去掉首尾空白
func NormalizeIdentifier(v string) string {
	return strings.TrimSpace(v)
}

// FormatExternalID 数字编号转成规范字符串
func FormatExternalID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// Caller 当前请求的调用方身份，来自令牌
type Caller struct {
	MemberID   int64
	ExternalID string
	Tier       int
}

func (c Caller) IsAdmin() bool {
	return c.Tier == AdminTier
}

// RecipientID 调用方作为收件人时使用的编号，可能为空
func (c Caller) RecipientID() string {
	return NormalizeIdentifier(c.ExternalID)
}

// SenderID 发件人编号，没有外部编号时退化为 ID-<成员ID>，保证永远非空
func (c Caller) SenderID() string {
	if id := c.RecipientID(); id != "" {
		return id
	}
	if c.MemberID > 0 {
		return "ID-" + strconv.FormatInt(c.MemberID, 10)
	}
	return "ID-UNKNOWN"
}
