package pkg

import (
	"fmt"

	"licensehub/internal/app/config"
	"licensehub/internal/app/handler"
	"licensehub/internal/app/middleware"
	"licensehub/internal/app/syncer"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.APIHandler
	Middleware *middleware.AuthMiddleware
	Scheduler  *syncer.Scheduler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, m *middleware.AuthMiddleware, s *syncer.Scheduler) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		Middleware: m,
		Scheduler:  s,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	// Регистрируем маршруты
	a.Handler.RegisterAPIRoutes(a.Router, a.Middleware)

	// Фоновые задачи: синхронизация провайдеров и обход предупреждений
	if err := a.Scheduler.Start(a.Config.SyncCron, a.Config.ScanCron); err != nil {
		logrus.Fatal("Error starting scheduler: ", err)
	}
	defer a.Scheduler.Stop()

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
