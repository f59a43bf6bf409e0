package handler

import (
	"delicrem-api/internal/model"
	"delicrem-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PedidoHandler struct {
	service service.PedidoService
}

func NewPedidoHandler(s service.PedidoService) *PedidoHandler {
	return &PedidoHandler{service: s}
}

// Listar supports the delivery-date probe (?fecha_entrega=2006-01-02&pagado=true)
// next to the usual q/pagina list params keyed on the cliente name.
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	filtros := service.PedidoFiltros{FechaEntrega: c.Query("fecha_entrega")}
	if c.Query("pagado") != "" {
		pagado := c.QueryBool("pagado")
		filtros.Pagado = &pagado
	}
	pedidos, err := h.service.Listar(filtros)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return responderLista(c, pedidos, func(p model.Pedido) string {
		if p.Cliente == nil {
			return ""
		}
		return p.Cliente.Nombre
	})
}

func (h *PedidoHandler) Obtener(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	pedido, err := h.service.Obtener(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedido)
}

func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var req service.PedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	pedido, err := h.service.Crear(&req)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(201).JSON(pedido)
}

func (h *PedidoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	var req service.PedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "JSON inválido"})
	}
	pedido, err := h.service.Actualizar(id, &req)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedido)
}

func (h *PedidoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID inválido"})
	}
	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pedido eliminado"})
}
