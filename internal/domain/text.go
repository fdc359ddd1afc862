package domain

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// CollapseWhitespace 把连续空白折叠成一个空格，并去掉首尾空白
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Abbreviate 折叠空白后按字符数截断，只有真正截断时才追加省略号
// maxLen 不小于 3 时结果长度不超过 maxLen
func Abbreviate(s string, maxLen int) string {
	text := CollapseWhitespace(s)
	if maxLen <= 0 || utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	end := max(0, maxLen-len(ellipsis))
	return string([]rune(text)[:end]) + ellipsis
}

// TruncateRunes 按字符数硬截断，不做其它处理
func TruncateRunes(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
