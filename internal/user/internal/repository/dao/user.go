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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrUserDuplicate  = errors.New("用户序列号冲突")
)

// 唯一索引冲突
const uniqueIndexConflictErrNo uint16 = 1062

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	SN       string `gorm:"type:varchar(64);uniqueIndex;not null;comment:'对外暴露的用户序列号'"`
	Nickname string `gorm:"type:varchar(128)"`
	Avatar   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindBySN(ctx context.Context, sn string) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (dao *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexConflictErrNo {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (dao *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Updates(&u).Error
}

func (dao *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (dao *GORMUserDAO) FindBySN(ctx context.Context, sn string) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("sn = ?", sn).First(&u).Error
	return u, err
}

func (dao *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&us).Error
	return us, err
}
