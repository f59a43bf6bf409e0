package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type VentaHandler struct {
	service service.VentaService
}

func NewVentaHandler(s service.VentaService) *VentaHandler {
	return &VentaHandler{service: s}
}

// Listar filters by cliente name (?q=) and a fecha_venta day range
// (?startDate=2006-01-02&endDate=...). The service filters; here we only page.
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	filtros := service.VentaFiltros{
		Cliente: c.Query("q"),
		Desde:   c.Query("startDate"),
		Hasta:   c.Query("endDate"),
	}
	ventas, err := h.service.Listar(filtros)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista[model.Venta](c, ventas, nil)
}

func (h *VentaHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	venta, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(venta)
}

func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var req service.VentaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	venta, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(venta)
}

func (h *VentaHandler) ActualizarEstado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	venta, err := h.service.ActualizarEstado(id, req.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(venta)
}

func (h *VentaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Venta eliminada"})
}
