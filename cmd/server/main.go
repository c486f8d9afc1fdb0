package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmsurvey/config"
	"farmsurvey/database"
	"farmsurvey/router"

	// Survey
	surveyCtrlImp "farmsurvey/pkg/survey/controllerImp"
	surveyRepoImp "farmsurvey/pkg/survey/repositoryImp"
	surveySvcImp "farmsurvey/pkg/survey/serviceImp"

	// Tree
	treeCtrlImp "farmsurvey/pkg/tree/controllerImp"
	treeRepoImp "farmsurvey/pkg/tree/repositoryImp"
	treeSvcImp "farmsurvey/pkg/tree/serviceImp"

	// Health
	healthCtrlImp "farmsurvey/pkg/health/controllerImp"

	"farmsurvey/pkg/validation"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Validator = validation.New()
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Static frontend for field collectors
	e.Static("/static", cfg.StaticDir)
	e.File("/", filepath.Join(cfg.StaticDir, "index.html"))
	if _, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err != nil {
		log.Printf("WARN: %s/index.html not found: %v", cfg.StaticDir, err)
	}

	// 4) Repos/Services/Controllers
	sRepo := surveyRepoImp.New(db)
	tRepo := treeRepoImp.New(db)
	sSvc := surveySvcImp.New(sRepo, tRepo, cfg.ConflictTolerance)
	tSvc := treeSvcImp.New(tRepo, sRepo)
	sCtrl := surveyCtrlImp.New(sSvc)
	tCtrl := treeCtrlImp.New(tSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, sCtrl, tCtrl, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
