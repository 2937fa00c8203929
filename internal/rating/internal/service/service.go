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

	"github.com/ecodeclub/forum/internal/rating/internal/domain"
	"github.com/ecodeclub/forum/internal/rating/internal/repository"
	"github.com/ecodeclub/forum/internal/rating/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidVote 投票值只能是 -1、0、1
	ErrInvalidVote = errors.New("投票值不合法")
	// ErrTopicNotFound 主题不存在
	ErrTopicNotFound = errors.New("主题不存在")
)

type RatingService interface {
	// Vote 调整 uid 对主题的投票并返回调整后的累计评分。
	// 同方向重复投票等于撤票，反方向投票等于改票，0 表示显式撤票
	Vote(ctx context.Context, uid, topicID int64, value int) (int64, error)
	// Detail 获取主题的累计评分和 uid 自己的投票
	Detail(ctx context.Context, uid, topicID int64) (domain.Rating, error)
}

type ratingService struct {
	repo repository.RatingRepository
}

func NewRatingService(repo repository.RatingRepository) RatingService {
	return &ratingService{repo: repo}
}

func (s *ratingService) Vote(ctx context.Context, uid, topicID int64, value int) (int64, error) {
	if value != -1 && value != 0 && value != 1 {
		return 0, ErrInvalidVote
	}
	rating, err := s.repo.Toggle(ctx, uid, topicID, value)
	if errors.Is(err, dao.ErrTopicNotFound) {
		return 0, ErrTopicNotFound
	}
	return rating, err
}

func (s *ratingService) Detail(ctx context.Context, uid, topicID int64) (domain.Rating, error) {
	var (
		eg    errgroup.Group
		score int64
		vote  domain.Vote
	)
	eg.Go(func() error {
		var err error
		score, err = s.repo.GetRating(ctx, topicID)
		if errors.Is(err, dao.ErrTopicNotFound) {
			return ErrTopicNotFound
		}
		return err
	})
	eg.Go(func() error {
		var err error
		vote, err = s.repo.GetVote(ctx, uid, topicID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Rating{}, err
	}
	return domain.Rating{
		TopicID: topicID,
		Score:   score,
		MyVote:  vote.Value,
	}, nil
}
