//go:build wireinject

package startup

import (
	"github.com/ecodeclub/forum/internal/rating"
	testioc "github.com/ecodeclub/forum/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*rating.Module, error) {
	wire.Build(
		testioc.InitDB,
		rating.InitModule)
	return new(rating.Module), nil
}
