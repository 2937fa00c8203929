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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, mock func(mock sqlmock.Sqlmock)) *gorm.DB {
	t.Helper()
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	mock(sqlMock)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func commentRow(id, uid, topicID int64, content string, parentID sql.Null[int64], enabled bool) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "uid", "topic_id", "content", "parent_id", "enabled", "utime", "ctime"})
	var parent any
	if parentID.Valid {
		parent = parentID.V
	}
	rows.AddRow(id, uid, topicID, content, parent, enabled, 123, 123)
	return rows
}

func TestCommentDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		comment Comment
		wantErr error
	}{
		{
			name: "创建根评论",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `comments` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			comment: Comment{
				Uid:     123,
				TopicID: 7,
				Content: "说得好",
			},
		},
		{
			name: "创建子评论，父评论存在且同主题",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .*").
					WillReturnRows(commentRow(9, 456, 7, "一楼", sql.Null[int64]{}, true))
				mock.ExpectExec("INSERT INTO `comments` .*").
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
			comment: Comment{
				Uid:      123,
				TopicID:  7,
				ParentID: sql.Null[int64]{V: 9, Valid: true},
				Content:  "同意楼上",
			},
		},
		{
			name: "父评论不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			comment: Comment{
				Uid:      123,
				TopicID:  7,
				ParentID: sql.Null[int64]{V: 999, Valid: true},
				Content:  "回复不存在的评论",
			},
			wantErr: ErrInvalidParentID,
		},
		{
			name: "父评论属于另一个主题",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .*").
					WillReturnRows(commentRow(9, 456, 8, "别的主题的评论", sql.Null[int64]{}, true))
				mock.ExpectRollback()
			},
			comment: Comment{
				Uid:      123,
				TopicID:  7,
				ParentID: sql.Null[int64]{V: 9, Valid: true},
				Content:  "串台了",
			},
			wantErr: ErrParentTopicMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock)
			d := NewCommentGORMDAO(db)
			_, err := d.Create(context.Background(), tc.comment)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCommentDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		id      int64
		uid     int64
		wantErr error
	}{
		{
			name: "作者删除，内容替换为占位文案",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .* FOR UPDATE").
					WillReturnRows(commentRow(1, 123, 7, "说得好", sql.Null[int64]{}, true))
				mock.ExpectExec("UPDATE `comments` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			id:  1,
			uid: 123,
		},
		{
			name: "重复删除是幂等的，不再更新",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .* FOR UPDATE").
					WillReturnRows(commentRow(1, 123, 7, TombstoneContent, sql.Null[int64]{}, false))
				mock.ExpectCommit()
			},
			id:  1,
			uid: 123,
		},
		{
			name: "不是作者",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .* FOR UPDATE").
					WillReturnRows(commentRow(1, 123, 7, "说得好", sql.Null[int64]{}, true))
				mock.ExpectRollback()
			},
			id:      1,
			uid:     456,
			wantErr: ErrNotAuthor,
		},
		{
			name: "评论不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
			},
			id:      404,
			uid:     123,
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock)
			d := NewCommentGORMDAO(db)
			c, err := d.Delete(context.Background(), tc.id, tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, TombstoneContent, c.Content)
				assert.False(t, c.Enabled)
			}
		})
	}
}
