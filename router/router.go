package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	surveyCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	treeCtrl interface {
		Create(echo.Context) error
		ListBySurvey(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/surveys", surveyCtrl.Create)
	e.GET("/surveys", surveyCtrl.List)
	e.GET("/surveys/:id", surveyCtrl.Get)
	e.PUT("/surveys/:id", surveyCtrl.Update)
	e.DELETE("/surveys/:id", surveyCtrl.Delete)

	e.POST("/surveys/:id/trees", treeCtrl.Create)
	e.GET("/surveys/:id/trees", treeCtrl.ListBySurvey)
	e.GET("/trees/:id", treeCtrl.Get)
	e.PUT("/trees/:id", treeCtrl.Update)
	e.DELETE("/trees/:id", treeCtrl.Delete)

	return e
}
