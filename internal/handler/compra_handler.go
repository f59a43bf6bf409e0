package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CompraHandler struct {
	service service.CompraService
}

func NewCompraHandler(s service.CompraService) *CompraHandler {
	return &CompraHandler{service: s}
}

// Listar filters by the proveedor name, the way the purchases screen searches.
func (h *CompraHandler) Listar(c *fiber.Ctx) error {
	compras, err := h.service.Listar()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, compras, func(co model.Compra) string {
		if co.Proveedor == nil {
			return ""
		}
		return co.Proveedor.Nombre
	})
}

func (h *CompraHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	compra, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(compra)
}

func (h *CompraHandler) Crear(c *fiber.Ctx) error {
	var req service.CompraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	compra, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(compra)
}

func (h *CompraHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Compra eliminada"})
}
