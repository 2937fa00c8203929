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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// Topic 主题表。rating 列是该主题所有投票值的累计和，
// 由 rating 模块的投票事务维护，这里只读。
type Topic struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	SN      string `gorm:"type:varchar(64);uniqueIndex;not null;comment:'对外暴露的主题标识'"`
	Uid     int64  `gorm:"not null;index;comment:'发帖人'"`
	Title   string `gorm:"type:varchar(512);not null"`
	Content string `gorm:"type:text;not null"`
	Rating  int64  `gorm:"not null;default:0;comment:'投票累计分'"`
	Ctime   int64
	Utime   int64
}

func (Topic) TableName() string {
	return "topics"
}

type TopicDAO interface {
	Create(ctx context.Context, t Topic) (int64, error)
	FindById(ctx context.Context, id int64) (Topic, error)
	// List 按发帖时间倒序分页
	List(ctx context.Context, offset, limit int) ([]Topic, error)
	Count(ctx context.Context) (int64, error)
}

type GORMTopicDAO struct {
	db *egorm.Component
}

func NewGORMTopicDAO(db *egorm.Component) TopicDAO {
	return &GORMTopicDAO{db: db}
}

func (dao *GORMTopicDAO) Create(ctx context.Context, t Topic) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (dao *GORMTopicDAO) FindById(ctx context.Context, id int64) (Topic, error) {
	var t Topic
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (dao *GORMTopicDAO) List(ctx context.Context, offset, limit int) ([]Topic, error) {
	var res []Topic
	err := dao.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *GORMTopicDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&Topic{}).Count(&count).Error
	return count, err
}
