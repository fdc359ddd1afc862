package domain

import (
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/communication-platform/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestSendRequest_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     SendRequest
		wantErr error
	}{
		{
			name: "合法请求",
			req:  SendRequest{Subject: "Aviso", Body: "Contenido"},
		},
		{
			name:    "主题为空",
			req:     SendRequest{Subject: "   ", Body: "Contenido"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "正文为空",
			req:     SendRequest{Subject: "Aviso", Body: "\n\t"},
			wantErr: errs.ErrValidation,
		},
		{
			name: "主题刚好 200 个字符",
			req:  SendRequest{Subject: strings.Repeat("ñ", SubjectMaxLen), Body: "b"},
		},
		{
			name:    "主题 201 个字符",
			req:     SendRequest{Subject: strings.Repeat("a", SubjectMaxLen+1), Body: "b"},
			wantErr: errs.ErrValidation,
		},
		{
			name:    "链接过长",
			req:     SendRequest{Subject: "a", Body: "b", Link: strings.Repeat("l", LinkMaxLen+1)},
			wantErr: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Normalize().Validate()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Page{Limit: DefaultPageLimit, Offset: 0}, NewPage(0, 0))
	assert.Equal(t, Page{Limit: DefaultPageLimit, Offset: 0}, NewPage(-5, -3))
	assert.Equal(t, Page{Limit: 1, Offset: 10}, NewPage(1, 10))
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 0}, NewPage(1000, 0))
}

func TestParseInboxStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, InboxStatusActive, ParseInboxStatus(""))
	assert.Equal(t, InboxStatusActive, ParseInboxStatus("whatever"))
	assert.Equal(t, InboxStatusUnread, ParseInboxStatus("UNREAD"))
	assert.Equal(t, InboxStatusArchived, ParseInboxStatus(" archived "))
	assert.Equal(t, InboxStatusDeleted, ParseInboxStatus("deleted"))
}

func TestParseSentScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SentScopeMine, ParseSentScope(""))
	assert.Equal(t, SentScopeMine, ParseSentScope("mine"))
	assert.Equal(t, SentScopeAll, ParseSentScope("ALL"))
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stats := ComputeStats([]Recipient{
		{RecipientID: "1", ReadAt: now},
		{RecipientID: "2", ReadAt: now, Archived: true},
		{RecipientID: "3", Deleted: true},
		{RecipientID: "4", Archived: true, Deleted: true},
	})
	assert.Equal(t, RecipientStats{Total: 4, Read: 2, Archived: 2, Deleted: 2}, stats)
}

func TestParseTargetMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input  string
		want   TargetMode
		wantOK bool
	}{
		{input: "nivel", want: TargetModeTier, wantOK: true},
		{input: "Tier", want: TargetModeTier, wantOK: true},
		{input: "seleccionados", want: TargetModeList, wantOK: true},
		{input: "list", want: TargetModeList, wantOK: true},
		{input: "TODOS", want: TargetModeAll, wantOK: true},
		{input: "all", want: TargetModeAll, wantOK: true},
		{input: "broadcast", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tc := range testCases {
		mode, ok := ParseTargetMode(tc.input)
		assert.Equal(t, tc.wantOK, ok, tc.input)
		assert.Equal(t, tc.want, mode, tc.input)
	}
}
