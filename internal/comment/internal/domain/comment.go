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

package domain

type User struct {
	ID       int64
	Nickname string
	Avatar   string
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 评论所属的主题
	TopicID int64

	// 当前评论要回复的父评论ID，0表示根评论
	ParentID int64

	// 评论的具体内容。被作者删除后为固定的占位文案
	Content string

	// false 表示作者已删除该评论，只保留占位文案维持评论串结构
	Enabled bool

	// 评论时间，评论内容本身不允许修改
	Ctime int64
	Utime int64

	// 当前评论的回复，只有在查询根评论的时候带上部分子回复
	Replies []Comment
}
