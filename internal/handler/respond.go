package handler

import (
	"errors"
	"strconv"

	"delicrem-api/internal/service"
	"delicrem-api/pkg/listado"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// responderError maps service errors: field maps go out as {"errors": {...}},
// everything else as {"error": "..."} with the matching status.
func responderError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return c.Status(400).JSON(fiber.Map{"errors": ve.Fields})
	}
	if errors.Is(err, service.ErrNoEncontrado) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, service.ErrCredenciales) {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(400).JSON(fiber.Map{"error": err.Error()})
}

// responderLista applies the shared list semantics: optional `q` substring
// filter (skipped when clave is nil, for screens that filter in the service)
// and optional `pagina`/`porPagina` pagination with a ceil page count. Without
// paging params the response stays a plain array.
func responderLista[T any](c *fiber.Ctx, items []T, clave func(T) string) error {
	if clave != nil {
		items = listado.Filtrar(items, c.Query("q"), clave)
	}
	pagina := c.QueryInt("pagina", 0)
	if pagina <= 0 {
		return c.JSON(items)
	}
	porPagina := c.QueryInt("porPagina", 5)
	return c.JSON(fiber.Map{
		"data":         listado.Paginar(items, pagina, porPagina),
		"total":        len(items),
		"totalPaginas": listado.TotalPaginas(len(items), porPagina),
		"pagina":       pagina,
	})
}
