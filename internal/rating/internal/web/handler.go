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

	"github.com/ecodeclub/forum/internal/rating/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.RatingService
}

func NewHandler(svc service.RatingService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/rating")
	group.POST("/vote", ginx.BS[VoteRequest](h.Vote))
	group.POST("/detail", ginx.BS[DetailRequest](h.Detail))
}

func (h *Handler) MemberRoutes(_ *gin.Engine) {}

func (h *Handler) Vote(ctx *ginx.Context, req VoteRequest, sess session.Session) (ginx.Result, error) {
	score, err := h.svc.Vote(ctx.Request.Context(), sess.Claims().Uid, req.TopicID, req.Value)
	switch {
	case err == nil:
		// 返回调整后的累计评分
		return ginx.Result{
			Data: score,
		}, nil
	case errors.Is(err, service.ErrInvalidVote):
		return invalidVoteResult, err
	case errors.Is(err, service.ErrTopicNotFound):
		return topicNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailRequest, sess session.Session) (ginx.Result, error) {
	rating, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.TopicID)
	switch {
	case err == nil:
		return ginx.Result{
			Data: Rating{
				TopicID: rating.TopicID,
				Score:   rating.Score,
				MyVote:  rating.MyVote,
			},
		}, nil
	case errors.Is(err, service.ErrTopicNotFound):
		return topicNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}
