package communication

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	communicationmocks "gitee.com/flycash/communication-platform/internal/service/communication/mocks"
	"gitee.com/flycash/communication-platform/internal/test"
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestHandlerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	dispatcher *communicationmocks.MockDispatcher
	inbox      *communicationmocks.MockInboxService
	server     *gin.Engine
}

var testCaller = domain.Caller{MemberID: 2, ExternalID: "100", Tier: domain.AdminTier}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.dispatcher = communicationmocks.NewMockDispatcher(s.ctrl)
	s.inbox = communicationmocks.NewMockInboxService(s.ctrl)

	s.server = gin.New()
	s.server.Use(func(ctx *gin.Context) {
		web.SetCaller(ctx, testCaller)
	})
	NewHandler(s.dispatcher, s.inbox).PrivateRoutes(s.server)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestSend() {
	t := s.T()
	ctime := time.UnixMilli(1700000000000)

	s.dispatcher.EXPECT().Send(gomock.Any(), testCaller, domain.SendRequest{
		Subject: "Hola",
		Body:    "Texto",
		Target: domain.TargetSpec{
			Mode:       "seleccionados",
			Recipients: []string{"7", "9"},
		},
	}).Return(domain.DispatchResult{
		Communication: domain.Communication{ID: 10, SenderID: "100", Subject: "Hola", Body: "Texto", Ctime: ctime},
		RecipientCount: 2,
		Preview: []domain.Member{
			{ExternalID: "7", FirstName: "Ana", Tier: 3},
			{ExternalID: "9", Tier: 2},
		},
	}, nil)

	// 旧客户端的字段名，编号混用数字和字符串
	req, err := http.NewRequest(http.MethodPost, "/communications", iox.NewJSONReader(map[string]any{
		"subject":    "Hola",
		"body":       "Texto",
		"mode":       "seleccionados",
		"recipients": []any{7, "9"},
	}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[SendResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, web.CodeOK, res.Code)
	assert.Equal(t, int64(10), res.Data.ID)
	assert.Equal(t, 2, res.Data.RecipientCount)
	assert.Equal(t, int64(1700000000000), res.Data.Ctime)
	require.Len(t, res.Data.Preview, 2)
	require.NotNil(t, res.Data.Preview[0].DisplayName)
	assert.Equal(t, "Ana", *res.Data.Preview[0].DisplayName)
	assert.Nil(t, res.Data.Preview[1].DisplayName)
}

func (s *HandlerTestSuite) TestSend_DefaultModeAndTier() {
	t := s.T()

	s.dispatcher.EXPECT().Send(gomock.Any(), testCaller, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Caller, req domain.SendRequest) (domain.DispatchResult, error) {
			assert.Equal(t, "all", req.Target.Mode)
			assert.Equal(t, "2", req.Target.Tier)
			assert.True(t, req.Target.IncludeAdmins)
			return domain.DispatchResult{}, fmt.Errorf("%w: mode=all", errs.ErrNoRecipients)
		})

	req, err := http.NewRequest(http.MethodPost, "/communications", iox.NewJSONReader(map[string]any{
		"subject":       "Hola",
		"body":          "Texto",
		"tier":          2,
		"includeAdmins": true,
	}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, web.CodeNoRecipients, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestSend_Errors() {
	testCases := []struct {
		name       string
		body       string
		mock       func()
		wantStatus int
		wantCode   string
		assertFn   func(t *testing.T, res web.Result[any])
	}{
		{
			name:       "请求体不是 JSON",
			body:       "{",
			mock:       func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name: "参数错误",
			body: `{"subject":"","body":"x"}`,
			mock: func() {
				s.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.DispatchResult{}, fmt.Errorf("%w: 主题不能为空", errs.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name: "收件人条件错误带上模式",
			body: `{"subject":"a","body":"b","mode":"nivel","tier":"x"}`,
			mock: func() {
				s.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.DispatchResult{}, errs.NewTargetError("nivel", "层级必须是整数"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeInvalidTarget,
			assertFn: func(t *testing.T, res web.Result[any]) {
				assert.Equal(t, "nivel", res.Details["mode"])
			},
		},
		{
			name: "内部错误不暴露细节",
			body: `{"subject":"a","body":"b"}`,
			mock: func() {
				s.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.DispatchResult{}, fmt.Errorf("Error 1040: Too many connections"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   web.CodeInternal,
			assertFn: func(t *testing.T, res web.Result[any]) {
				assert.NotContains(t, res.Msg, "1040")
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			tc.mock()

			req, err := http.NewRequest(http.MethodPost, "/communications", strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatus, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.assertFn != nil {
				tc.assertFn(t, res)
			}
		})
	}
}

func (s *HandlerTestSuite) TestGetDetail() {
	testCases := []struct {
		name       string
		path       string
		mock       func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "非法ID",
			path:       "/communications/abc",
			mock:       func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name:       "ID不是正数",
			path:       "/communications/0",
			mock:       func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name: "通讯不存在",
			path: "/communications/99",
			mock: func() {
				s.inbox.EXPECT().GetDetail(gomock.Any(), testCaller, int64(99)).
					Return(domain.CommunicationDetail{}, fmt.Errorf("%w: id=99", errs.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   web.CodeNotFound,
		},
		{
			name: "不是收件人",
			path: "/communications/10",
			mock: func() {
				s.inbox.EXPECT().GetDetail(gomock.Any(), testCaller, int64(10)).
					Return(domain.CommunicationDetail{}, fmt.Errorf("%w: id=10", errs.ErrForbidden))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   web.CodeForbidden,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			tc.mock()

			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestGetDetail_Admin() {
	t := s.T()
	s.inbox.EXPECT().GetDetail(gomock.Any(), testCaller, int64(10)).Return(domain.CommunicationDetail{
		Communication: domain.Communication{ID: 10, Subject: "Aviso", Body: "Texto completo", Ctime: time.UnixMilli(1)},
		AdminView:     true,
		Stats:         domain.RecipientStats{Total: 2, Read: 1},
		Recipients: []domain.RecipientDetail{
			{
				Recipient: domain.Recipient{ID: 1, RecipientID: "7", ReadAt: time.UnixMilli(5)},
				Member:    &domain.Member{ExternalID: "7", FirstName: "Ana", LastName: "Pérez", Tier: 3},
			},
			{Recipient: domain.Recipient{ID: 2, RecipientID: "11"}},
		},
	}, nil)

	req, err := http.NewRequest(http.MethodGet, "/communications/10", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[DetailResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.True(t, res.AdminView)
	assert.Nil(t, res.Self)
	require.NotNil(t, res.Stats)
	assert.Equal(t, Stats{Total: 2, Read: 1}, *res.Stats)
	require.Len(t, res.Recipients, 2)
	require.NotNil(t, res.Recipients[0].Member)
	assert.Equal(t, "Ana Pérez", res.Recipients[0].Member.DisplayName)
	require.NotNil(t, res.Recipients[0].ReadAt)
	assert.Equal(t, int64(5), *res.Recipients[0].ReadAt)
	assert.Nil(t, res.Recipients[1].Member)
	assert.Nil(t, res.Recipients[1].ReadAt)
}

func (s *HandlerTestSuite) TestListInbox() {
	t := s.T()
	s.inbox.EXPECT().ListInbox(gomock.Any(), testCaller, domain.InboxStatusUnread, domain.Page{Limit: 100, Offset: 0}).
		Return([]domain.InboxItem{
			{
				Communication: domain.Communication{ID: 10, Subject: "Aviso", Body: "Texto completo", Ctime: time.UnixMilli(1)},
				Recipient:     domain.Recipient{RecipientID: "100"},
			},
		}, int64(1), nil)

	req, err := http.NewRequest(http.MethodGet, "/communications/inbox?status=UNREAD&limit=500&offset=-3&includeBody=true", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ListResp[InboxItem]]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, int64(1), res.Total)
	assert.Equal(t, 100, res.Limit)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Texto completo", res.Items[0].Body)
	assert.Equal(t, "Texto completo", res.Items[0].BodyPreview)
	assert.Nil(t, res.Items[0].ReadAt)
}

func (s *HandlerTestSuite) TestListSent() {
	t := s.T()
	s.inbox.EXPECT().ListSent(gomock.Any(), testCaller, domain.SentScopeAll, domain.NewPage(0, 0)).
		Return([]domain.SentItem{
			{
				Communication: domain.Communication{ID: 10, Subject: "Aviso", Body: "Texto", Ctime: time.UnixMilli(1)},
				Stats:         domain.RecipientStats{Total: 3, Deleted: 1},
			},
		}, int64(1), nil)

	req, err := http.NewRequest(http.MethodGet, "/communications/sent?scope=all&limit=abc", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ListResp[SentItem]]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, domain.DefaultPageLimit, res.Limit)
	require.Len(t, res.Items, 1)
	assert.Empty(t, res.Items[0].Body)
	assert.Equal(t, Stats{Total: 3, Deleted: 1}, res.Items[0].Stats)
}

func (s *HandlerTestSuite) TestMarkRead() {
	t := s.T()
	s.inbox.EXPECT().MarkRead(gomock.Any(), testCaller, int64(10)).Return(time.UnixMilli(1700000000000), nil)

	req, err := http.NewRequest(http.MethodPost, "/communications/10/read", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[ReadResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, ReadResp{ID: 10, ReadAt: 1700000000000}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestSetArchived() {
	testCases := []struct {
		name       string
		body       string
		mock       func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "缺少 archived",
			body:       `{}`,
			mock:       func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name:       "archived 不是布尔值",
			body:       `{"archived":"yes"}`,
			mock:       func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   web.CodeValidation,
		},
		{
			name: "取消归档",
			body: `{"archived":false}`,
			mock: func() {
				s.inbox.EXPECT().SetArchived(gomock.Any(), testCaller, int64(10), false).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   web.CodeOK,
		},
		{
			name: "投递记录不存在",
			body: `{"archived":true}`,
			mock: func() {
				s.inbox.EXPECT().SetArchived(gomock.Any(), testCaller, int64(10), true).
					Return(fmt.Errorf("%w: mock", errs.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   web.CodeNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			tc.mock()

			req, err := http.NewRequest(http.MethodPost, "/communications/10/archive", strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatus, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestSoftDelete() {
	t := s.T()
	s.inbox.EXPECT().SoftDelete(gomock.Any(), testCaller, int64(10)).Return(nil)

	req, err := http.NewRequest(http.MethodDelete, "/communications/10", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[StateResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.True(t, res.Deleted)
	assert.Nil(t, res.Archived)
}

func TestHandler_Unauthorized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := gin.New()
	NewHandler(communicationmocks.NewMockDispatcher(ctrl), communicationmocks.NewMockInboxService(ctrl)).
		PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodGet, "/communications/inbox", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, web.CodeUnauthorized, recorder.MustScan().Code)
}
