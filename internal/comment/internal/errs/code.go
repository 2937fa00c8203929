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

package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// InvalidComment 评论内容非法，或者父评论和主题对不上
	InvalidComment = ErrorCode{Code: 403001, Msg: "评论不合法"}
	// CommentNotFound 评论不存在，包括父评论不存在
	CommentNotFound = ErrorCode{Code: 403002, Msg: "评论不存在"}
	// TopicNotFound 评论指向的主题不存在
	TopicNotFound = ErrorCode{Code: 403003, Msg: "主题不存在"}
	// NotAuthor 只有评论作者本人可以删除评论
	NotAuthor = ErrorCode{Code: 403004, Msg: "无权操作该评论"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
