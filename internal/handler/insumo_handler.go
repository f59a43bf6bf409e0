package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InsumoHandler serves both the insumos and categorias_insumo resources.
type InsumoHandler struct {
	service service.InsumoService
}

func NewInsumoHandler(s service.InsumoService) *InsumoHandler {
	return &InsumoHandler{service: s}
}

func (h *InsumoHandler) Listar(c *fiber.Ctx) error {
	insumos, err := h.service.Listar()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, insumos, func(i model.Insumo) string { return i.Nombre })
}

func (h *InsumoHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	insumo, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(insumo)
}

func (h *InsumoHandler) Crear(c *fiber.Ctx) error {
	var req service.InsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	insumo, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(insumo)
}

func (h *InsumoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.InsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	insumo, err := h.service.Actualizar(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(insumo)
}

func (h *InsumoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Insumo eliminado"})
}

func (h *InsumoHandler) ListarCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.ListarCategorias()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, categorias, func(cat model.CategoriaInsumo) string { return cat.Nombre })
}

func (h *InsumoHandler) ObtenerCategoria(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	categoria, err := h.service.ObtenerCategoria(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(categoria)
}

func (h *InsumoHandler) CrearCategoria(c *fiber.Ctx) error {
	var req service.CategoriaInsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	categoria, err := h.service.CrearCategoria(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(categoria)
}

func (h *InsumoHandler) ActualizarCategoria(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.CategoriaInsumoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	categoria, err := h.service.ActualizarCategoria(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(categoria)
}

func (h *InsumoHandler) EliminarCategoria(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.EliminarCategoria(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Categoría eliminada"})
}
