package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	handlers "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/handlers/http"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/middleware"
)

type (
	AdminServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	AdminServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.AdminPort)
	s.Logger.WithField("addr", addr).Info("starting admin server")
	return s.Router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	baseRouter := s.Router.Group("")
	s.addRoutes(baseRouter)
}

func (s *AdminServer) addRoutes(router fiber.Router) {
	v1 := router.Group("/api/v1")
	if s.middlewareTransport.AuthMiddleware != nil {
		v1.Use(s.middlewareTransport.AuthMiddleware.Middleware())
	}
	{
		tests := v1.Group("/tests")
		{
			tests.Post("", s.handlerTransport.CreateTestHandler.Handle)
			tests.Get("", s.handlerTransport.ListTestsHandler.Handle)
			tests.Get("/:test_id", s.handlerTransport.GetTestHandler.Handle)
			tests.Delete("/:test_id", s.handlerTransport.DeleteTestHandler.Handle)
			tests.Post("/:test_id/variants", s.handlerTransport.GenerateVariantsHandler.Handle)
			tests.Post("/:test_id/execute", s.handlerTransport.ExecuteTestHandler.Handle)
			tests.Post("/:test_id/cancel", s.handlerTransport.CancelTestHandler.Handle)
			tests.Get("/:test_id/status", s.handlerTransport.GetTestStatusHandler.Handle)
		}

		variants := v1.Group("/variants")
		{
			variants.Post("/preview", s.handlerTransport.PreviewVariantsHandler.Handle)
			variants.Post("/:variant_id/execute", s.handlerTransport.ExecuteVariantHandler.Handle)
		}

		runs := v1.Group("/runs")
		{
			runs.Post("/:run_id/evaluate", s.handlerTransport.EvaluateRunHandler.Handle)
		}

		v1.Get("/scenarios", s.handlerTransport.ListScenariosHandler.Handle)
		v1.Get("/models", s.handlerTransport.ListModelsHandler.Handle)

		analytics := v1.Group("/analytics")
		{
			analytics.Get("/dashboard", s.handlerTransport.DashboardAnalyticsHandler.Handle)
			analytics.Get("/vendor-comparison", s.handlerTransport.VendorComparisonHandler.Handle)
			analytics.Get("/tests/:test_id", s.handlerTransport.TestAnalyticsHandler.Handle)
		}
	}
}

func (s *AdminServer) Shutdown() error {
	return s.Router.Shutdown()
}
