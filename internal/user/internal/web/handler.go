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
	"github.com/ecodeclub/forum/internal/user/internal/domain"
	"github.com/ecodeclub/forum/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/user")
	group.POST("/callback", ginx.B[Callback](h.Callback))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/user")
	group.GET("/profile", ginx.S(h.Profile))
	group.POST("/edit", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) MemberRoutes(_ *gin.Engine) {}

// Callback 登录态由外部身份系统保证，这里补齐本地用户记录并初始化 session
func (h *Handler) Callback(ctx *ginx.Context, req Callback) (ginx.Result, error) {
	u, err := h.svc.FindOrCreateBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			SN:       u.SN,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			SN:       u.SN,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
		},
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		Id:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
