package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/factory"
)

type availableModel struct {
	Vendor   string `json:"vendor"`
	Model    string `json:"model"`
	Category string `json:"category"`
}

// Static catalog of models the platform knows how to drive. Any model the
// vendor serves can still be requested by name; this list is what the UI
// offers by default.
var availableModels = []availableModel{
	{Vendor: factory.VendorOpenAI, Model: "gpt-4", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorOpenAI, Model: "gpt-4-turbo", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorAnthropic, Model: "claude-3-opus-20240229", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorAnthropic, Model: "claude-3-sonnet-20240229", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorAnthropic, Model: "claude-3-5-sonnet-20240620", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorGoogle, Model: "gemini-1.5-pro", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorGoogle, Model: "gemini-1.5-flash", Category: backends.CategoryEnterprise},
	{Vendor: factory.VendorOllama, Model: "llama3", Category: backends.CategoryLocal},
	{Vendor: factory.VendorOllama, Model: "mistral", Category: backends.CategoryLocal},
	{Vendor: factory.VendorOllama, Model: "codellama", Category: backends.CategoryLocal},
}

type listModelsHandler struct{}

func NewListModelsHandler() Handler {
	return &listModelsHandler{}
}

func (h *listModelsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"models": availableModels})
}
