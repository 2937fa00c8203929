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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrInvalidParentID 父评论不存在
	ErrInvalidParentID = errors.New("父评论ID非法")
	// ErrParentTopicMismatch 父评论属于另一个主题
	ErrParentTopicMismatch = errors.New("父评论不属于该主题")
	// ErrNotAuthor 删除者不是评论作者
	ErrNotAuthor = errors.New("不是评论作者")
)

// TombstoneContent 作者删除评论后保留的占位文案，
// 保证已有回复的评论串不断裂
const TombstoneContent = "[Deleted comment]"

// Comment 表示针对某一主题的评论
type Comment struct {
	ID int64 `gorm:"autoIncrement,primaryKey;comment:'评论自增ID'"`

	Uid int64 `gorm:"not null;index;comment:'评论者'"`

	// 评论的对象
	TopicID int64 `gorm:"type:bigint;not null;index:idx_topic_id;comment:'主题ID'"`

	Content string `gorm:"type:text;not null;comment:'评论的具体内容'"`

	// 可以为 NULL。如果是 NULL 就代表它自身就是一个根评论
	ParentID sql.Null[int64] `gorm:"type:bigint;index:idx_parent_id;comment:'父评论ID，NULL表示对主题的直接评论，非NULL表示要回复的评论的ID'"`

	// false 表示作者已删除，内容被替换为占位文案
	Enabled bool `gorm:"not null;default:true;comment:'false-作者已删除'"`

	Utime int64
	Ctime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 创建根评论或者子评论，校验父评论存在且与当前评论属于同一个主题
	Create(ctx context.Context, comment Comment) (int64, error)
	// FindByID 根据评论ID查找评论
	FindByID(ctx context.Context, id int64) (Comment, error)
	// FindRoots 查找某一主题下的所有根评论，按创建顺序的倒序排序
	FindRoots(ctx context.Context, topicID int64, offset, limit int) ([]Comment, error)
	// CountRoots 统计某一主题下所有根评论的数量
	CountRoots(ctx context.Context, topicID int64) (int64, error)
	// FindReplies 查找某一父评论的所有子评论，按创建顺序排序（即先评论的在前面）
	FindReplies(ctx context.Context, parentID int64, offset, limit int) ([]Comment, error)
	// CountReplies 统计某一父评论的所有子评论的数量
	CountReplies(ctx context.Context, parentID int64) (int64, error)
	// Delete 软删除：内容替换为占位文案，Enabled 置为 false，行本身保留。
	// 只有作者本人可以删除，重复删除是幂等的。返回删除后的评论
	Delete(ctx context.Context, id, uid int64) (Comment, error)
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	c.Enabled = true
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 当前评论非根评论
		if c.ParentID.Valid {
			// 找到父评论，校验与当前评论属于同一个主题。
			// 已删除（Enabled=false）的父评论仍然可以被回复，评论串不断裂
			var parent Comment
			if err := tx.First(&parent, "id = ?", c.ParentID.V).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidParentID, err)
			}
			if parent.TopicID != c.TopicID {
				return fmt.Errorf("%w: 父评论属于主题 %d", ErrParentTopicMismatch, parent.TopicID)
			}
		}
		return tx.Create(&c).Error
	})
	return c.ID, err
}

func (g *commentDAO) FindByID(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, id).Error
	return c, err
}

func (g *commentDAO) FindRoots(ctx context.Context, topicID int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		// 根评论
		Where("parent_id IS NULL").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountRoots(ctx context.Context, topicID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("topic_id = ?", topicID).
		Where("parent_id IS NULL").
		Count(&count).Error
	return count, err
}

func (g *commentDAO) FindReplies(ctx context.Context, parentID int64, offset, limit int) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *commentDAO) CountReplies(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	return count, err
}

func (g *commentDAO) Delete(ctx context.Context, id, uid int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 行锁串行化对同一评论的并发删除
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		if c.Uid != uid {
			return fmt.Errorf("%w: uid=%d", ErrNotAuthor, uid)
		}
		// 已经删除过了，幂等返回
		if !c.Enabled {
			return nil
		}
		now := time.Now().UnixMilli()
		c.Content = TombstoneContent
		c.Enabled = false
		c.Utime = now
		return tx.Model(&Comment{}).Where("id = ?", id).
			Updates(map[string]any{
				"content": TombstoneContent,
				"enabled": false,
				"utime":   now,
			}).Error
	})
	return c, err
}
