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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrTopicNotFound 主题不存在，没办法投票
	ErrTopicNotFound = errors.New("主题不存在")
)

// Vote 一个用户对一个主题的投票，唯一索引保证一人一票
type Vote struct {
	ID int64 `gorm:"autoIncrement,primaryKey"`

	Uid     int64 `gorm:"not null;uniqueIndex:uniq_uid_topic_id,priority:1;comment:'投票的人'"`
	TopicID int64 `gorm:"type:bigint;not null;uniqueIndex:uniq_uid_topic_id,priority:2;index:idx_topic_id;comment:'主题ID'"`

	// 只会是 -1 或 1，撤销的票直接删掉行
	Value int `gorm:"type:tinyint;not null;comment:'-1-踩，1-赞'"`

	Utime int64
	Ctime int64
}

func (Vote) TableName() string {
	return "votes"
}

type VoteDAO interface {
	// Toggle 调整 uid 对主题的投票并同步主题的累计评分，返回调整后的累计评分。
	// 语义：
	//   - 没投过，value 为 0：什么都不做
	//   - 没投过，value 为 ±1：落一票，评分加上 value
	//   - 投过 v，value 为 0 或等于 v：撤票，评分减去 v
	//   - 投过 v，value 为相反方向：改票，评分加上 value-v
	Toggle(ctx context.Context, uid, topicID int64, value int) (int64, error)
	// GetVote 查找 uid 对主题的投票，没投过返回 ErrRecordNotFound
	GetVote(ctx context.Context, uid, topicID int64) (Vote, error)
	// GetRating 查找主题当前的累计评分
	GetRating(ctx context.Context, topicID int64) (int64, error)
}

type voteDAO struct {
	db *egorm.Component
}

func NewVoteGORMDAO(db *egorm.Component) VoteDAO {
	return &voteDAO{db: db}
}

func (g *voteDAO) Toggle(ctx context.Context, uid, topicID int64, value int) (int64, error) {
	var newRating int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住主题行，对同一个主题的并发投票在这里串行化，
		// 顺便确认主题存在并拿到当前评分
		var topicRating struct {
			Rating int64
		}
		err := tx.Table("topics").Select("rating").
			Where("id = ?", topicID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&topicRating).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTopicNotFound
			}
			return err
		}

		var delta int
		var vote Vote
		err = tx.Where("uid = ? AND topic_id = ?", uid, topicID).
			First(&vote).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if value == 0 {
				// 撤一张不存在的票，什么都不用做
				newRating = topicRating.Rating
				return nil
			}
			if er := g.insertVote(tx, uid, topicID, value); er != nil {
				return er
			}
			delta = value
		case err == nil:
			if value == 0 || value == vote.Value {
				// 撤票
				if er := tx.Delete(&Vote{}, vote.ID).Error; er != nil {
					return er
				}
				delta = -vote.Value
			} else {
				// 改票
				if er := tx.Model(&Vote{}).Where("id = ?", vote.ID).
					Updates(map[string]any{
						"value": value,
						"utime": time.Now().UnixMilli(),
					}).Error; er != nil {
					return er
				}
				delta = value - vote.Value
			}
		default:
			return err
		}

		newRating = topicRating.Rating + int64(delta)
		return tx.Table("topics").Where("id = ?", topicID).
			Updates(map[string]any{
				"rating": gorm.Expr("rating + ?", delta),
				"utime":  time.Now().UnixMilli(),
			}).Error
	})
	return newRating, err
}

func (g *voteDAO) insertVote(tx *gorm.DB, uid, topicID int64, value int) error {
	now := time.Now().UnixMilli()
	return tx.Create(&Vote{
		Uid:     uid,
		TopicID: topicID,
		Value:   value,
		Utime:   now,
		Ctime:   now,
	}).Error
}

func (g *voteDAO) GetVote(ctx context.Context, uid, topicID int64) (Vote, error) {
	var v Vote
	err := g.db.WithContext(ctx).
		Where("uid = ? AND topic_id = ?", uid, topicID).
		First(&v).Error
	return v, err
}

func (g *voteDAO) GetRating(ctx context.Context, topicID int64) (int64, error) {
	var topicRating struct {
		Rating int64
	}
	err := g.db.WithContext(ctx).Table("topics").Select("rating").
		Where("id = ?", topicID).
		Take(&topicRating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrTopicNotFound
	}
	return topicRating.Rating, err
}
