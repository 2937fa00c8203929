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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/forum/internal/user/internal/domain"
	"github.com/ecodeclub/forum/internal/user/internal/repository/cache"
	"github.com/ecodeclub/forum/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUserNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindBySN(ctx context.Context, sn string) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(u))
}

func (repo *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := repo.dao.UpdateNonZeroFields(ctx, repo.toEntity(u))
	if err != nil {
		return err
	}
	// 改完必须删缓存，否则 Profile 会读到旧数据
	return repo.cache.Delete(ctx, u.Id)
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = repo.toDomain(ue)
	// 缓存失败只影响性能，不影响正确性
	if er := repo.cache.Set(ctx, u); er != nil {
		repo.logger.Error("缓存用户信息失败",
			elog.FieldErr(er),
			elog.Any("uid", id))
	}
	return u, nil
}

func (repo *CachedUserRepository) FindBySN(ctx context.Context, sn string) (domain.User, error) {
	u, err := repo.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := repo.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(_ int, src dao.User) domain.User {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
