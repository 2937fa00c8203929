//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/forum/internal/test/ioc"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/google/wire"
)

func InitModule() (*topic.Module, error) {
	wire.Build(
		testioc.InitDB,
		topic.InitModule)
	return new(topic.Module), nil
}
