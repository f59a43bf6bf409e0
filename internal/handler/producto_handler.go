package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductoHandler struct {
	service service.ProductoService
}

func NewProductoHandler(s service.ProductoService) *ProductoHandler {
	return &ProductoHandler{service: s}
}

func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	productos, err := h.service.Listar()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, productos, func(p model.Producto) string { return p.Nombre })
}

func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	p, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var req service.ProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	p, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(p)
}

func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.ProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	p, err := h.service.Actualizar(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Producto eliminado"})
}

func (h *ProductoHandler) Producir(c *fiber.Ctx) error {
	var req service.ProduccionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	if err := h.service.Producir(&req); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Producción registrada"})
}
