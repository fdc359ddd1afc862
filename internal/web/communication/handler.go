package communication

import (
	"fmt"
	"strconv"
	"strings"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	communicationsvc "gitee.com/flycash/communication-platform/internal/service/communication"
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	dispatcher communicationsvc.Dispatcher
	inbox      communicationsvc.InboxService
}

func NewHandler(dispatcher communicationsvc.Dispatcher, inbox communicationsvc.InboxService) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		inbox:      inbox,
	}
}

// PrivateRoutes 需要登录的路由，sendMiddlewares 只作用于发送接口
func (h *Handler) PrivateRoutes(server *gin.Engine, sendMiddlewares ...gin.HandlerFunc) {
	g := server.Group("/communications")
	g.POST("", append(sendMiddlewares, h.Send)...)
	g.GET("/sent", h.ListSent)
	g.GET("/inbox", h.ListInbox)
	g.GET("/:id", h.GetDetail)
	g.POST("/:id/read", h.MarkRead)
	g.POST("/:id/archive", h.SetArchived)
	g.DELETE("/:id", h.SoftDelete)
}

func (h *Handler) Send(ctx *gin.Context) {
	caller, err := web.Caller(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	var req SendReq
	if err = ctx.ShouldBindJSON(&req); err != nil {
		web.Error(ctx, fmt.Errorf("%w: 请求体格式错误", errs.ErrValidation))
		return
	}
	res, err := h.dispatcher.Send(ctx.Request.Context(), caller, req.toDomain())
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.Created(ctx, toSendResp(res))
}

func (h *Handler) ListSent(ctx *gin.Context) {
	caller, err := web.Caller(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	page := pageFromQuery(ctx)
	includeBody := includeBodyFromQuery(ctx)
	items, total, err := h.inbox.ListSent(ctx.Request.Context(), caller,
		domain.ParseSentScope(ctx.Query("scope")), page)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, ListResp[SentItem]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items: slice.Map(items, func(_ int, src domain.SentItem) SentItem {
			return toSentItem(src, includeBody)
		}),
	})
}

func (h *Handler) ListInbox(ctx *gin.Context) {
	caller, err := web.Caller(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	page := pageFromQuery(ctx)
	includeBody := includeBodyFromQuery(ctx)
	items, total, err := h.inbox.ListInbox(ctx.Request.Context(), caller,
		domain.ParseInboxStatus(ctx.Query("status")), page)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, ListResp[InboxItem]{
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
		Items: slice.Map(items, func(_ int, src domain.InboxItem) InboxItem {
			return toInboxItem(src, includeBody)
		}),
	})
}

func (h *Handler) GetDetail(ctx *gin.Context) {
	caller, id, err := callerAndID(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	detail, err := h.inbox.GetDetail(ctx.Request.Context(), caller, id)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, toDetailResp(detail))
}

func (h *Handler) MarkRead(ctx *gin.Context) {
	caller, id, err := callerAndID(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	readAt, err := h.inbox.MarkRead(ctx.Request.Context(), caller, id)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, ReadResp{ID: id, ReadAt: readAt.UnixMilli()})
}

func (h *Handler) SetArchived(ctx *gin.Context) {
	caller, id, err := callerAndID(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	var req ArchiveReq
	if err = ctx.ShouldBindJSON(&req); err != nil || req.Archived == nil {
		web.Error(ctx, fmt.Errorf("%w: archived 必须是布尔值", errs.ErrValidation))
		return
	}
	if err = h.inbox.SetArchived(ctx.Request.Context(), caller, id, *req.Archived); err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, StateResp{ID: id, Archived: req.Archived})
}

func (h *Handler) SoftDelete(ctx *gin.Context) {
	caller, id, err := callerAndID(ctx)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	if err = h.inbox.SoftDelete(ctx.Request.Context(), caller, id); err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, StateResp{ID: id, Deleted: true})
}

func callerAndID(ctx *gin.Context) (domain.Caller, int64, error) {
	caller, err := web.Caller(ctx)
	if err != nil {
		return domain.Caller{}, 0, err
	}
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domain.Caller{}, 0, fmt.Errorf("%w: 非法的通讯ID %q", errs.ErrValidation, ctx.Param("id"))
	}
	return caller, id, nil
}

// pageFromQuery 非数字的 limit/offset 按缺省值处理
func pageFromQuery(ctx *gin.Context) domain.Page {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	offset, _ := strconv.Atoi(ctx.Query("offset"))
	return domain.NewPage(limit, offset)
}

func includeBodyFromQuery(ctx *gin.Context) bool {
	switch strings.ToLower(ctx.Query("includeBody")) {
	case "1", "true":
		return true
	default:
		return false
	}
}
