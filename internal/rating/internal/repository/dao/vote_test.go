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

func topicRatingRow(rating int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"rating"}).AddRow(rating)
}

func voteRow(id, uid, topicID int64, value int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "uid", "topic_id", "value", "utime", "ctime"}).
		AddRow(id, uid, topicID, value, 123, 123)
}

func noVoteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"})
}

func TestVoteDAO_Toggle(t *testing.T) {
	const (
		uid     = int64(123)
		topicID = int64(7)
	)
	testCases := []struct {
		name  string
		mock  func(mock sqlmock.Sqlmock)
		value int

		wantRating int64
		wantErr    error
	}{
		{
			name: "没投过，投了一张赞成票",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(topicRatingRow(5))
				mock.ExpectQuery("SELECT \\* FROM `votes` WHERE uid = .* AND topic_id = .*").
					WillReturnRows(noVoteRows())
				mock.ExpectExec("INSERT INTO `votes` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `topics` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			value:      1,
			wantRating: 6,
		},
		{
			name: "没投过，撤一张不存在的票，什么都不做",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(topicRatingRow(5))
				mock.ExpectQuery("SELECT \\* FROM `votes` WHERE uid = .* AND topic_id = .*").
					WillReturnRows(noVoteRows())
				mock.ExpectCommit()
			},
			value:      0,
			wantRating: 5,
		},
		{
			name: "投过赞成票，同方向重复投票等于撤票",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(topicRatingRow(5))
				mock.ExpectQuery("SELECT \\* FROM `votes` WHERE uid = .* AND topic_id = .*").
					WillReturnRows(voteRow(1, uid, topicID, 1))
				mock.ExpectExec("DELETE FROM `votes` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `topics` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			value:      1,
			wantRating: 4,
		},
		{
			name: "投过赞成票，显式撤票",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(topicRatingRow(5))
				mock.ExpectQuery("SELECT \\* FROM `votes` WHERE uid = .* AND topic_id = .*").
					WillReturnRows(voteRow(1, uid, topicID, 1))
				mock.ExpectExec("DELETE FROM `votes` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `topics` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			value:      0,
			wantRating: 4,
		},
		{
			name: "投过反对票，改成赞成票，评分加二",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(topicRatingRow(5))
				mock.ExpectQuery("SELECT \\* FROM `votes` WHERE uid = .* AND topic_id = .*").
					WillReturnRows(voteRow(1, uid, topicID, -1))
				mock.ExpectExec("UPDATE `votes` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `topics` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			value:      1,
			wantRating: 7,
		},
		{
			name: "主题不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `rating` FROM `topics` WHERE id = .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"rating"}))
				mock.ExpectRollback()
			},
			value:   1,
			wantErr: ErrTopicNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock)
			d := NewVoteGORMDAO(db)
			rating, err := d.Toggle(context.Background(), uid, topicID, tc.value)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantRating, rating)
			}
		})
	}
}
