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
	"github.com/ecodeclub/forum/internal/rating/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidVoteResult = ginx.Result{
		Code: errs.InvalidVote.Code,
		Msg:  errs.InvalidVote.Msg,
	}
	topicNotFoundResult = ginx.Result{
		Code: errs.TopicNotFound.Code,
		Msg:  errs.TopicNotFound.Msg,
	}
)

type VoteRequest struct {
	TopicID int64 `json:"topicID"`
	// -1 踩，1 赞，0 撤票。同方向重复投票等于撤票
	Value int `json:"value"`
}

type DetailRequest struct {
	TopicID int64 `json:"topicID"`
}

type Rating struct {
	TopicID int64 `json:"topicID"`
	// Score 所有有效投票的和
	Score int64 `json:"score"`
	// MyVote 当前用户的投票，0 表示没投
	MyVote int `json:"myVote"`
}
