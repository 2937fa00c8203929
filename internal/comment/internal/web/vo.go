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

package web

import (
	"github.com/ecodeclub/forum/internal/comment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCommentResult = ginx.Result{
		Code: errs.InvalidComment.Code,
		Msg:  errs.InvalidComment.Msg,
	}
	commentNotFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
	topicNotFoundResult = ginx.Result{
		Code: errs.TopicNotFound.Code,
		Msg:  errs.TopicNotFound.Msg,
	}
	notAuthorResult = ginx.Result{
		Code: errs.NotAuthor.Code,
		Msg:  errs.NotAuthor.Msg,
	}
)

type CreateRequest struct {
	TopicID int64 `json:"topicID"`
	// 回复某个评论，0 表示直接评论主题
	ParentID int64  `json:"parentID"`
	Content  string `json:"content"`
}

type ListRequest struct {
	TopicID int64 `json:"topicID"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
}

type RepliesRequest struct {
	// 父评论 ID
	ParentID int64 `json:"parentID"`
	Offset   int   `json:"offset"`
	Limit    int   `json:"limit"`
}

type DeleteRequest struct {
	ID int64 `json:"id"`
}

type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Comment struct {
	ID int64 `json:"id"`
	// 评论的人
	User User `json:"user"`

	// 针对什么主题的评论
	// 注意，即便是回复某个评论，这个字段依旧有值
	TopicID int64 `json:"topicID"`

	// 回复的父评论，0 表示根评论
	ParentID int64 `json:"parentID"`

	// 评论的具体内容，被删除之后是固定的占位文案
	Content string `json:"content"`

	// false 表示作者已删除
	Enabled bool `json:"enabled"`

	Ctime int64 `json:"ctime"`
	Utime int64 `json:"utime"`

	Replies []Comment `json:"replies,omitempty"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}
