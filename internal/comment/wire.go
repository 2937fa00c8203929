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

//go:build wireinject

package comment

import (
	"sync"

	"github.com/ecodeclub/forum/internal/comment/internal/event"
	"github.com/ecodeclub/forum/internal/comment/internal/repository"
	"github.com/ecodeclub/forum/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/forum/internal/comment/internal/service"
	"github.com/ecodeclub/forum/internal/comment/internal/web"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(
	db *egorm.Component,
	q mq.MQ,
	topicModule *topic.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewCommentRepository,
		event.NewCommentEventProducer,
		service.NewCommentService,
		web.NewHandler,
		wire.FieldsOf(new(*topic.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CommentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCommentGORMDAO(db)
}
