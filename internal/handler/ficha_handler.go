package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FichaTecnicaHandler struct {
	service service.FichaTecnicaService
}

func NewFichaTecnicaHandler(s service.FichaTecnicaService) *FichaTecnicaHandler {
	return &FichaTecnicaHandler{service: s}
}

func (h *FichaTecnicaHandler) Listar(c *fiber.Ctx) error {
	fichas, err := h.service.Listar()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, fichas, func(f model.FichaTecnica) string { return f.Descripcion })
}

func (h *FichaTecnicaHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	f, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(f)
}

func (h *FichaTecnicaHandler) Crear(c *fiber.Ctx) error {
	var req service.FichaTecnicaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	f, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(f)
}

func (h *FichaTecnicaHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.FichaTecnicaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	f, err := h.service.Actualizar(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(f)
}

func (h *FichaTecnicaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Ficha técnica eliminada"})
}
