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

	"github.com/ecodeclub/forum/internal/topic/internal/domain"
	"github.com/ecodeclub/forum/internal/topic/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrTopicNotFound = errors.New("主题不存在")
	ErrInvalidTopic  = errors.New("标题或正文不合法")
)

const (
	maxTitleLength   = 512
	maxContentLength = 65535
)

//go:generate mockgen -source=./topic.go -package=topicmocks -destination=../../mocks/topic.mock.go TopicService
type TopicService interface {
	Create(ctx context.Context, t domain.Topic) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Topic, error)
	// List 按发帖时间倒序分页，同时返回总数
	List(ctx context.Context, offset, limit int) ([]domain.Topic, int64, error)
}

type topicService struct {
	repo repository.TopicRepository
}

func NewTopicService(repo repository.TopicRepository) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) Create(ctx context.Context, t domain.Topic) (int64, error) {
	if t.Title == "" || len(t.Title) > maxTitleLength ||
		t.Content == "" || len(t.Content) > maxContentLength {
		return 0, ErrInvalidTopic
	}
	t.SN = shortuuid.New()
	return s.repo.Create(ctx, t)
}

func (s *topicService) Detail(ctx context.Context, id int64) (domain.Topic, error) {
	t, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return domain.Topic{}, ErrTopicNotFound
	}
	return t, err
}

func (s *topicService) List(ctx context.Context, offset, limit int) ([]domain.Topic, int64, error) {
	var (
		eg     errgroup.Group
		topics []domain.Topic
		total  int64
	)
	eg.Go(func() error {
		var err error
		topics, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return topics, total, eg.Wait()
}
