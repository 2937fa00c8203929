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
	"errors"

	"github.com/ecodeclub/forum/internal/rating/internal/domain"
	"github.com/ecodeclub/forum/internal/rating/internal/repository/dao"
)

//go:generate mockgen -source=./rating.go -package=repomocks -destination=./mocks/rating.mock.go RatingRepository

type RatingRepository interface {
	// Toggle 调整 uid 对主题的投票，返回调整后的累计评分
	Toggle(ctx context.Context, uid, topicID int64, value int) (int64, error)
	// GetVote 查找 uid 对主题的投票，没投过返回零值
	GetVote(ctx context.Context, uid, topicID int64) (domain.Vote, error)
	// GetRating 查找主题当前的累计评分
	GetRating(ctx context.Context, topicID int64) (int64, error)
}

type ratingRepository struct {
	dao dao.VoteDAO
}

func NewRatingRepository(dao dao.VoteDAO) RatingRepository {
	return &ratingRepository{dao: dao}
}

func (r *ratingRepository) Toggle(ctx context.Context, uid, topicID int64, value int) (int64, error) {
	return r.dao.Toggle(ctx, uid, topicID, value)
}

func (r *ratingRepository) GetVote(ctx context.Context, uid, topicID int64) (domain.Vote, error) {
	v, err := r.dao.GetVote(ctx, uid, topicID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		// 没投过票不是错误
		return domain.Vote{Uid: uid, TopicID: topicID}, nil
	}
	if err != nil {
		return domain.Vote{}, err
	}
	return domain.Vote{
		Uid:     v.Uid,
		TopicID: v.TopicID,
		Value:   v.Value,
		Utime:   v.Utime,
	}, nil
}

func (r *ratingRepository) GetRating(ctx context.Context, topicID int64) (int64, error) {
	return r.dao.GetRating(ctx, topicID)
}
