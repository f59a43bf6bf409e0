package handler

import (
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	token, usuario, err := h.service.Login(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{
		"token":   token,
		"usuario": usuario,
	})
}
