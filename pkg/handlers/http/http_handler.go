package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// SecurityTest
	CreateTestHandler       Handler
	ListTestsHandler        Handler
	GetTestHandler          Handler
	DeleteTestHandler       Handler
	GenerateVariantsHandler Handler
	ExecuteTestHandler      Handler
	CancelTestHandler       Handler
	GetTestStatusHandler    Handler

	// Runs and variants
	ExecuteVariantHandler  Handler
	EvaluateRunHandler     Handler
	PreviewVariantsHandler Handler

	// Reference data
	ListScenariosHandler Handler
	ListModelsHandler    Handler

	// Analytics
	DashboardAnalyticsHandler Handler
	TestAnalyticsHandler      Handler
	VendorComparisonHandler   Handler
}
