//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/forum/internal/comment"
	"github.com/ecodeclub/forum/internal/rating"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		topic.InitModule,
		wire.FieldsOf(new(*topic.Module), "Hdl"),
		comment.InitModule,
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		rating.InitModule,
		wire.FieldsOf(new(*rating.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
