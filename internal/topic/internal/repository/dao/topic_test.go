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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTopicMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGORMTopicDAO_Create(t *testing.T) {
	db, mock := newTopicMockDB(t)
	mock.ExpectExec("INSERT INTO `topics` .*").
		WillReturnResult(sqlmock.NewResult(5, 1))
	d := NewGORMTopicDAO(db)
	id, err := d.Create(context.Background(), Topic{
		SN:      "topic-abc",
		Uid:     12345,
		Title:   "标题",
		Content: "内容",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestGORMTopicDAO_FindById(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		id        int64
		wantTopic Topic
		wantErr   error
	}{
		{
			name: "找到主题",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "sn", "uid", "title", "content", "rating", "ctime", "utime"}).
					AddRow(1, "topic-abc", 12345, "标题", "内容", 3, 123, 123)
				mock.ExpectQuery("SELECT \\* FROM `topics` WHERE id = .*").
					WillReturnRows(rows)
			},
			id: 1,
			wantTopic: Topic{
				Id:      1,
				SN:      "topic-abc",
				Uid:     12345,
				Title:   "标题",
				Content: "内容",
				Rating:  3,
				Ctime:   123,
				Utime:   123,
			},
		},
		{
			name: "主题不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `topics` WHERE id = .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			id:      10,
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newTopicMockDB(t)
			tc.mock(mock)
			d := NewGORMTopicDAO(db)
			topic, err := d.FindById(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantTopic, topic)
		})
	}
}

func TestGORMTopicDAO_List(t *testing.T) {
	db, mock := newTopicMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "sn", "uid", "title", "content", "rating", "ctime", "utime"}).
		AddRow(2, "topic-2", 12345, "标题2", "内容2", 0, 124, 124).
		AddRow(1, "topic-1", 12345, "标题1", "内容1", 0, 123, 123)
	mock.ExpectQuery("SELECT \\* FROM `topics` ORDER BY id DESC LIMIT .*").
		WillReturnRows(rows)
	d := NewGORMTopicDAO(db)
	res, err := d.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []Topic{
		{Id: 2, SN: "topic-2", Uid: 12345, Title: "标题2", Content: "内容2", Ctime: 124, Utime: 124},
		{Id: 1, SN: "topic-1", Uid: 12345, Title: "标题1", Content: "内容1", Ctime: 123, Utime: 123},
	}, res)
}
