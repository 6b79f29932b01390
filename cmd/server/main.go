package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"studyplan/config"
	"studyplan/database"
	"studyplan/router"

	// Auth + Health
	authCtrlImp "studyplan/pkg/auth/controllerImp"
	healthCtrlImp "studyplan/pkg/health/controllerImp"

	// Subjects
	subjectCtrlImp "studyplan/pkg/subject/controllerImp"
	subjectRepoImp "studyplan/pkg/subject/repositoryImp"

	// Plans
	planCtrlImp "studyplan/pkg/plan/controllerImp"
	planRepoImp "studyplan/pkg/plan/repositoryImp"
	planSvcImp "studyplan/pkg/plan/serviceImp"

	// Library
	libCtrlImp "studyplan/pkg/library/controllerImp"
	libRepoImp "studyplan/pkg/library/repositoryImp"
	libSvcImp "studyplan/pkg/library/serviceImp"

	// AI + fallback rules
	"studyplan/pkg/ai"
	"studyplan/pkg/rules"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Fallback planner tables (built-in defaults + optional overrides)
	planner, err := rules.LoadFromFiles(cfg.CategoryCSV, cfg.ResourceXLSX)
	if err != nil {
		log.Fatalf("fallback tables: %v", err)
	}

	// 5) LLM (mock when not configured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("WARN: LLM not configured, using mock client")
		llm = ai.NewMock()
	}

	// 6) Library wiring
	libRepo := libRepoImp.New(db)
	libSvc := libSvcImp.New(libRepo)
	libCtrl := libCtrlImp.New(libSvc, cfg.LibraryDomains, cfg.LibraryMaxBytes)

	// 7) Repos/Controllers
	sRepo := subjectRepoImp.New(db)
	sCtrl := subjectCtrlImp.New(sRepo)

	pRepo := planRepoImp.New(db)
	pSvc := planSvcImp.NewPlanService(llm, planner, pRepo, libSvc)
	pCtrl := planCtrlImp.NewPlanCtrl(pSvc, sRepo)

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	limiter := echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))
	r := router.New(e, cfg.RequireUser, limiter, sCtrl, pCtrl, libCtrl, authCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
