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

package event

import (
	"github.com/ecodeclub/forum/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const commentCreatedEvents = "comment_created_events"

// CommentEvent 评论创建之后发出的事件，下游（比如通知模块）自行消费
type CommentEvent struct {
	CommentID int64 `json:"commentID"`
	TopicID   int64 `json:"topicID"`
	// 0 表示根评论
	ParentID int64 `json:"parentID"`
	Uid      int64 `json:"uid"`
}

type Producer interface {
	mqx.Producer[CommentEvent]
}

func NewCommentEventProducer(q mq.MQ) (Producer, error) {
	return mqx.NewGeneralProducer[CommentEvent](q, commentCreatedEvents)
}
