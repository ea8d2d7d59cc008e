// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/idconsole/controller"
	"github.com/dev-mohitbeniwal/idconsole/metrics"
	"github.com/dev-mohitbeniwal/idconsole/middleware"
	"github.com/dev-mohitbeniwal/idconsole/permission"
)

type Options struct {
	SessionCookie     string
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitDuration time.Duration
}

func SetupRouter(
	controllers *controller.Controllers,
	resolver *permission.Resolver,
	opts Options,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.Use(middleware.SessionAuth(resolver, opts.SessionCookie))
	if opts.RateLimitEnabled {
		api.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitDuration))
	}

	controllers.Profile.RegisterRoutes(api)

	management := api.Group("/management")
	controllers.User.RegisterRoutes(management)
	controllers.Session.RegisterRoutes(management)
	controllers.Guardian.RegisterRoutes(management)

	admin := api.Group("/admin")
	controllers.Audit.RegisterRoutes(admin)
	controllers.Profile.RegisterAdminRoutes(admin)

	return router
}
