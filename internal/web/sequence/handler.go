package sequence

import (
	"gitee.com/flycash/communication-platform/internal/service/sequence"
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	generator sequence.Generator
}

func NewHandler(generator sequence.Generator) *Handler {
	return &Handler{generator: generator}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/sequences/:name/next", h.Next)
}

type NextResp struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

func (h *Handler) Next(ctx *gin.Context) {
	if _, err := web.Caller(ctx); err != nil {
		web.Error(ctx, err)
		return
	}
	name := ctx.Param("name")
	v, err := h.generator.Next(ctx.Request.Context(), name)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, NextResp{Name: name, Value: v})
}
