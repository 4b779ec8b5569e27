package controller

import (
	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type systemController struct{}

func NewSystemController() ISystemController {
	return &systemController{}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "ok",
		"message": "Afaq Tours Chatbot API is running.",
	})
}
