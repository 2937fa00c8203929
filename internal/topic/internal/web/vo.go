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
	"github.com/ecodeclub/forum/internal/topic/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidTopicResult = ginx.Result{
		Code: errs.InvalidTopic.Code,
		Msg:  errs.InvalidTopic.Msg,
	}
	topicNotFoundResult = ginx.Result{
		Code: errs.TopicNotFound.Code,
		Msg:  errs.TopicNotFound.Msg,
	}
)

type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DetailRequest struct {
	TopicID int64 `json:"topicID"`
}

type ListRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Topic struct {
	ID      int64  `json:"id"`
	SN      string `json:"sn"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// Rating 当前累计评分
	Rating int64 `json:"rating"`
	Utime  int64 `json:"utime"`
}

type TopicList struct {
	Topics []Topic `json:"topics"`
	Total  int     `json:"total"`
}
