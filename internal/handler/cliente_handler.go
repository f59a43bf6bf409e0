package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClienteHandler struct {
	service service.ClienteService
}

func NewClienteHandler(s service.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: s}
}

func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	clientes, err := h.service.Listar()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, clientes, func(cl model.Cliente) string { return cl.Nombre })
}

func (h *ClienteHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	cliente, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var req service.ClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	cliente, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(cliente)
}

func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.ClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	cliente, err := h.service.Actualizar(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cliente eliminado"})
}
