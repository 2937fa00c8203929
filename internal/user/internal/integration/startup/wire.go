//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/forum/internal/test/ioc"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/google/wire"
)

func InitModule() (*user.Module, error) {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		user.InitModule)
	return new(user.Module), nil
}
