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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/forum/internal/comment/internal/domain"
	"github.com/ecodeclub/forum/internal/comment/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository

type CommentRepository interface {
	// Create 创建根评论或者子评论
	Create(ctx context.Context, comment domain.Comment) (int64, error)
	// FindByID 根据评论ID查找评论
	FindByID(ctx context.Context, id int64) (domain.Comment, error)
	// FindRoots 查找某一主题下的所有根评论，创建顺序的倒序，并带上每条根评论的部分回复
	FindRoots(ctx context.Context, topicID int64, offset, limit, maxSubCnt int) ([]domain.Comment, error)
	// CountRoots 统计某一主题下所有根评论的数量
	CountRoots(ctx context.Context, topicID int64) (int64, error)
	// FindReplies 查找某一父评论的所有子评论，按照创建顺序排序（即先评论的在前面）
	FindReplies(ctx context.Context, parentID int64, offset, limit int) ([]domain.Comment, error)
	// CountReplies 统计某一父评论的所有子评论的数量
	CountReplies(ctx context.Context, parentID int64) (int64, error)
	// Delete 作者软删除自己的评论，返回删除后的评论
	Delete(ctx context.Context, id, uid int64) (domain.Comment, error)
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(dao dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: dao}
}

func (r *commentRepository) Create(ctx context.Context, comment domain.Comment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(comment))
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) FindRoots(ctx context.Context, topicID int64, offset, limit, maxSubCnt int) ([]domain.Comment, error) {
	roots, err := r.dao.FindRoots(ctx, topicID, offset, limit)
	if err != nil {
		return nil, err
	}
	comments := slice.Map(roots, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	})
	// 并发获取每条根评论的最早几条回复
	var eg errgroup.Group
	for i := range comments {
		eg.Go(func() error {
			children, err1 := r.dao.FindReplies(ctx, comments[i].ID, 0, maxSubCnt)
			if err1 != nil {
				return err1
			}
			comments[i].Replies = slice.Map(children, func(_ int, src dao.Comment) domain.Comment {
				return r.toDomain(src)
			})
			return nil
		})
	}
	return comments, eg.Wait()
}

func (r *commentRepository) CountRoots(ctx context.Context, topicID int64) (int64, error) {
	return r.dao.CountRoots(ctx, topicID)
}

func (r *commentRepository) FindReplies(ctx context.Context, parentID int64, offset, limit int) ([]domain.Comment, error) {
	found, err := r.dao.FindReplies(ctx, parentID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	return r.dao.CountReplies(ctx, parentID)
}

func (r *commentRepository) Delete(ctx context.Context, id, uid int64) (domain.Comment, error) {
	c, err := r.dao.Delete(ctx, id, uid)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(c), nil
}

func (r *commentRepository) toEntity(comment domain.Comment) dao.Comment {
	return dao.Comment{
		ID:      comment.ID,
		Uid:     comment.User.ID,
		TopicID: comment.TopicID,
		ParentID: sql.Null[int64]{
			V:     comment.ParentID,
			Valid: comment.ParentID != 0,
		},
		Content: comment.Content,
	}
}

func (r *commentRepository) toDomain(comment dao.Comment) domain.Comment {
	return domain.Comment{
		ID: comment.ID,
		User: domain.User{
			ID: comment.Uid,
		},
		TopicID:  comment.TopicID,
		ParentID: comment.ParentID.V,
		Content:  comment.Content,
		Enabled:  comment.Enabled,
		Ctime:    comment.Ctime,
		Utime:    comment.Utime,
	}
}
