// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/forum/internal/topic/internal/domain"
	"github.com/ecodeclub/forum/internal/topic/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.TopicService
}

func NewHandler(svc service.TopicService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/topic")
	group.POST("/list", ginx.B[ListRequest](h.List))
	group.POST("/detail", ginx.B[DetailRequest](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/topic/create", ginx.BS[CreateRequest](h.Create))
}

func (h *Handler) MemberRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Topic{
		Title:   req.Title,
		Content: req.Content,
		Uid:     sess.Claims().Uid,
	})
	if errors.Is(err, service.ErrInvalidTopic) {
		return invalidTopicResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailRequest) (ginx.Result, error) {
	t, err := h.svc.Detail(ctx.Request.Context(), req.TopicID)
	if errors.Is(err, service.ErrTopicNotFound) {
		return topicNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVO(t)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = defaultLimit
	}
	topics, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TopicList{
			Topics: slice.Map(topics, func(_ int, src domain.Topic) Topic {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) toVO(t domain.Topic) Topic {
	return Topic{
		ID:      t.ID,
		SN:      t.SN,
		Title:   t.Title,
		Content: t.Content,
		Rating:  t.Rating,
		Utime:   t.Utime,
	}
}
