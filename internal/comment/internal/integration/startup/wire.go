//go:build wireinject

package startup

import (
	"github.com/ecodeclub/forum/internal/comment"
	testioc "github.com/ecodeclub/forum/internal/test/ioc"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/google/wire"
)

func InitModule(topicModule *topic.Module, userModule *user.Module) (*comment.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		comment.InitModule)
	return new(comment.Module), nil
}
