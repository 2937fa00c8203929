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
	"github.com/ecodeclub/forum/internal/topic/internal/domain"
	"github.com/ecodeclub/forum/internal/topic/internal/repository/dao"
)

var ErrTopicNotFound = dao.ErrRecordNotFound

type TopicRepository interface {
	Create(ctx context.Context, t domain.Topic) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Topic, error)
	List(ctx context.Context, offset, limit int) ([]domain.Topic, error)
	Count(ctx context.Context) (int64, error)
}

type topicRepository struct {
	dao dao.TopicDAO
}

func NewTopicRepository(d dao.TopicDAO) TopicRepository {
	return &topicRepository{dao: d}
}

func (r *topicRepository) Create(ctx context.Context, t domain.Topic) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(t))
}

func (r *topicRepository) FindById(ctx context.Context, id int64) (domain.Topic, error) {
	t, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Topic{}, err
	}
	return r.toDomain(t), nil
}

func (r *topicRepository) List(ctx context.Context, offset, limit int) ([]domain.Topic, error) {
	ts, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(_ int, src dao.Topic) domain.Topic {
		return r.toDomain(src)
	}), nil
}

func (r *topicRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *topicRepository) toEntity(t domain.Topic) dao.Topic {
	return dao.Topic{
		Id:      t.ID,
		SN:      t.SN,
		Uid:     t.Uid,
		Title:   t.Title,
		Content: t.Content,
	}
}

func (r *topicRepository) toDomain(t dao.Topic) domain.Topic {
	return domain.Topic{
		ID:      t.Id,
		SN:      t.SN,
		Uid:     t.Uid,
		Title:   t.Title,
		Content: t.Content,
		Rating:  t.Rating,
		Utime:   t.Utime,
	}
}
