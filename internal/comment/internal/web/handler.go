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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/forum/internal/comment/internal/domain"
	"github.com/ecodeclub/forum/internal/comment/internal/service"
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
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	// 查询根评论，按照评论时间的倒序（注意和replies接口的区别）排序
	group.POST("/list", ginx.B[ListRequest](h.List))
	// 获得某个根评论的子评论，按照评论时间排序（即先评论的在前面）
	group.POST("/replies", ginx.B[RepliesRequest](h.Replies))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.BS[CreateRequest](h.Create))
	group.POST("/delete", ginx.BS[DeleteRequest](h.Delete))
}

func (h *Handler) MemberRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateRequest, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Comment{
		User: domain.User{
			ID: sess.Claims().Uid,
		},
		TopicID:  req.TopicID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	switch {
	case err == nil:
		// 返回评论 ID
		return ginx.Result{
			Data: id,
		}, nil
	case errors.Is(err, service.ErrInvalidComment):
		return invalidCommentResult, err
	case errors.Is(err, service.ErrTopicNotFound):
		return topicNotFoundResult, err
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListRequest) (ginx.Result, error) {
	offset, limit := normalize(req.Offset, req.Limit)
	roots, total, err := h.svc.List(ctx.Request.Context(), req.TopicID, offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找主题%d的根评论失败: %w", req.TopicID, err)
	}
	return ginx.Result{
		Data: CommentList{
			Comments: slice.Map(roots, func(_ int, src domain.Comment) Comment {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Replies(ctx *ginx.Context, req RepliesRequest) (ginx.Result, error) {
	offset, limit := normalize(req.Offset, req.Limit)
	replies, total, err := h.svc.Replies(ctx.Request.Context(), req.ParentID, offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找评论ID=%d的子评论失败: %w", req.ParentID, err)
	}
	return ginx.Result{
		Data: CommentList{
			Comments: slice.Map(replies, func(_ int, src domain.Comment) Comment {
				return h.toVO(src)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteRequest, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{
			Data: h.toVO(c),
		}, nil
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, err
	case errors.Is(err, service.ErrNotAuthor):
		return notAuthorResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) toVO(c domain.Comment) Comment {
	return Comment{
		ID: c.ID,
		User: User{
			ID:       c.User.ID,
			Nickname: c.User.Nickname,
			Avatar:   c.User.Avatar,
		},
		TopicID:  c.TopicID,
		ParentID: c.ParentID,
		Content:  c.Content,
		Enabled:  c.Enabled,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
		Replies: slice.Map(c.Replies, func(_ int, src domain.Comment) Comment {
			return h.toVO(src)
		}),
	}
}

func normalize(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return offset, limit
}
