package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"studyplan/pkg/middleware"
	"studyplan/pkg/plan/controller"
	subjectCtrl "studyplan/pkg/subject/controller"
)

func New(
	e *echo.Echo,
	requireUser bool,
	planRateLimiter echoMiddleware.RateLimiterStore,
	subjects subjectCtrl.SubjectController,
	plans controller.PlanController,
	library interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	e.Use(middleware.RequireUser(requireUser))

	e.GET("/health", healthCtrl.Health)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/whoami", authCtrl.WhoAmI)

	e.POST("/subjects", subjects.Create)
	e.GET("/subjects", subjects.List)
	e.DELETE("/subjects/:id", subjects.Delete)

	g := e.Group("/plans")
	g.POST("/generate", plans.Generate, echoMiddleware.RateLimiter(planRateLimiter))
	g.GET("", plans.List)
	g.GET("/:id", plans.Get)
	g.DELETE("/:id", plans.Delete)

	e.POST("/library/ingest", library.IngestText)
	e.POST("/library/ingest/url", library.IngestURL)
	e.GET("/library/search", library.Search)

	return e
}
