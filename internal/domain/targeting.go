package domain

import "strings"

// TargetMode 收件人选择模式
type TargetMode string

const (
	TargetModeTier TargetMode = "tier"
	TargetModeList TargetMode = "list"
	TargetModeAll  TargetMode = "all"
)

var targetModeAliases = map[string]TargetMode{
	"nivel":         TargetModeTier,
	"tier":          TargetModeTier,
	"list":          TargetModeList,
	"seleccionados": TargetModeList,
	"all":           TargetModeAll,
	"todos":         TargetModeAll,
}

// ParseTargetMode 大小写不敏感，第二个返回值表示是否认识该模式
func ParseTargetMode(s string) (TargetMode, bool) {
	m, ok := targetModeAliases[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

// TargetSpec 调用方描述的收件人范围，原样保留输入，由 recipient 解析
type TargetSpec struct {
	Mode          string
	Tier          string
	Recipients    []string
	IncludeAdmins bool
}
