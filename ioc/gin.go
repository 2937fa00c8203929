package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/forum/internal/comment"
	"github.com/ecodeclub/forum/internal/rating"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	topicHdl *topic.Handler,
	commentHdl *comment.Handler,
	ratingHdl *rating.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	topicHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	ratingHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	topicHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	ratingHdl.PrivateRoutes(res.Engine)
	return res
}
