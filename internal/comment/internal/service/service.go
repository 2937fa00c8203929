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
	"unicode/utf8"

	"github.com/ecodeclub/forum/internal/comment/internal/domain"
	"github.com/ecodeclub/forum/internal/comment/internal/event"
	"github.com/ecodeclub/forum/internal/comment/internal/repository"
	"github.com/ecodeclub/forum/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidComment 评论内容为空、过长，或者父评论与主题不匹配
	ErrInvalidComment = errors.New("评论不合法")
	// ErrCommentNotFound 评论不存在，包括要回复的父评论不存在
	ErrCommentNotFound = errors.New("评论不存在")
	// ErrTopicNotFound 评论指向的主题不存在
	ErrTopicNotFound = errors.New("主题不存在")
	// ErrNotAuthor 只有作者本人可以删除评论
	ErrNotAuthor = errors.New("不是评论作者")
)

const (
	// 评论内容按字符（rune）计数的上限
	maxContentLength = 4000
	// 查询根评论时顺带返回的回复数量
	defaultSubCnt = 3
)

type CommentService interface {
	// Create 创建根评论或者子评论，返回评论ID
	Create(ctx context.Context, comment domain.Comment) (int64, error)
	// List 查找某一主题下的所有根评论，按创建顺序的倒序排序，带上部分回复
	List(ctx context.Context, topicID int64, offset, limit int) ([]domain.Comment, int64, error)
	// Replies 查找某一父评论的所有子评论，按创建顺序排序（即先评论的在前面）
	Replies(ctx context.Context, parentID int64, offset, limit int) ([]domain.Comment, int64, error)
	// Delete 作者软删除自己的评论，返回删除后的评论
	Delete(ctx context.Context, id, uid int64) (domain.Comment, error)
}

type commentService struct {
	topicSvc topic.Service
	userSvc  user.UserService
	repo     repository.CommentRepository
	producer event.Producer
	logger   *elog.Component
}

func NewCommentService(topicSvc topic.Service,
	userSvc user.UserService,
	repo repository.CommentRepository,
	producer event.Producer) CommentService {
	return &commentService{
		topicSvc: topicSvc,
		userSvc:  userSvc,
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	cnt := utf8.RuneCountInString(comment.Content)
	if cnt == 0 || cnt > maxContentLength {
		return 0, ErrInvalidComment
	}
	// 校验主题存在
	if _, err := s.topicSvc.Detail(ctx, comment.TopicID); err != nil {
		if errors.Is(err, topic.ErrTopicNotFound) {
			return 0, ErrTopicNotFound
		}
		return 0, err
	}
	id, err := s.repo.Create(ctx, comment)
	switch {
	case err == nil:
	case errors.Is(err, dao.ErrInvalidParentID):
		return 0, ErrCommentNotFound
	case errors.Is(err, dao.ErrParentTopicMismatch):
		return 0, ErrInvalidComment
	default:
		return 0, err
	}
	// 发送事件失败不影响评论本身
	evt := event.CommentEvent{
		CommentID: id,
		TopicID:   comment.TopicID,
		ParentID:  comment.ParentID,
		Uid:       comment.User.ID,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送评论创建事件失败",
			elog.FieldErr(er),
			elog.Any("event", evt))
	}
	return id, nil
}

func (s *commentService) List(ctx context.Context, topicID int64, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)
	eg.Go(func() error {
		var err error
		comments, err = s.repo.FindRoots(ctx, topicID, offset, limit, defaultSubCnt)
		if err != nil {
			return err
		}
		return s.setUserInfo(ctx, comments)
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountRoots(ctx, topicID)
		return err
	})
	return comments, total, eg.Wait()
}

func (s *commentService) Replies(ctx context.Context, parentID int64, offset, limit int) ([]domain.Comment, int64, error) {
	var (
		eg      errgroup.Group
		replies []domain.Comment
		total   int64
	)
	eg.Go(func() error {
		var err error
		replies, err = s.repo.FindReplies(ctx, parentID, offset, limit)
		if err != nil {
			return err
		}
		return s.setUserInfo(ctx, replies)
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountReplies(ctx, parentID)
		return err
	})
	return replies, total, eg.Wait()
}

func (s *commentService) Delete(ctx context.Context, id, uid int64) (domain.Comment, error) {
	c, err := s.repo.Delete(ctx, id, uid)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return domain.Comment{}, ErrCommentNotFound
	case errors.Is(err, dao.ErrNotAuthor):
		return domain.Comment{}, ErrNotAuthor
	default:
		return domain.Comment{}, err
	}
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	// 获取用户id集合，回复的作者也要带上
	uids := make([]int64, 0, len(comments)*2)
	for i := range comments {
		uids = append(uids, comments[i].User.ID)
		for j := range comments[i].Replies {
			uids = append(uids, comments[i].Replies[j].User.ID)
		}
	}

	// 批量查询用户信息
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	// 构建映射
	userInfoMap := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		userInfoMap[p.Id] = domain.User{
			ID:       p.Id,
			Nickname: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	// 直接覆盖用户信息
	for i := range comments {
		if u, ok := userInfoMap[comments[i].User.ID]; ok {
			comments[i].User = u
		}
		for j := range comments[i].Replies {
			if u, ok := userInfoMap[comments[i].Replies[j].User.ID]; ok {
				comments[i].Replies[j].User = u
			}
		}
	}
	return nil
}
