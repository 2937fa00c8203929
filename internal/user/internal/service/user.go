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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/forum/internal/user/internal/domain"
	"github.com/ecodeclub/forum/internal/user/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新昵称、头像之类的非敏感数据
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// BatchProfile 批量查询用户信息，用于评论列表等场景的作者信息填充
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
	// FindOrCreateBySN 登录态由外部身份系统保证，
	// 这里只负责在本地补齐用户记录
	FindOrCreateBySN(ctx context.Context, sn string) (domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号
	user.SN = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *userService) FindOrCreateBySN(ctx context.Context, sn string) (domain.User, error) {
	u, err := svc.repo.FindBySN(ctx, sn)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	if sn == "" {
		sn = shortuuid.New()
	}
	nickname := sn
	if len(nickname) > 4 {
		nickname = nickname[:4]
	}
	id, err := svc.repo.Create(ctx, domain.User{
		SN:       sn,
		Nickname: nickname,
	})
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{Id: id, SN: sn, Nickname: nickname}, nil
}
