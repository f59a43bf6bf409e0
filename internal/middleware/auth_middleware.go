package middleware

import (
	"strings"

	"delicrem-api/internal/repository"
	"delicrem-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Sesion is the authenticated context injected into handlers, so they read
// one value instead of reaching into raw JWT claims.
type Sesion struct {
	UsuarioID uint
	Nombre    string
	Email     string
	Rol       string
	Permisos  []string
}

// TienePermiso matches permission names case-insensitively.
func (s *Sesion) TienePermiso(nombre string) bool {
	for _, p := range s.Permisos {
		if strings.EqualFold(p, nombre) {
			return true
		}
	}
	return false
}

const sesionKey = "sesion"

// SesionActual returns the session set by RequireAuth, or nil on public routes.
func SesionActual(c *fiber.Ctx) *Sesion {
	s, _ := c.Locals(sesionKey).(*Sesion)
	return s
}

// RequireAuth validates the bearer token and sets the Sesion in context
func RequireAuth(usuarioRepo repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Falta el token de autorización"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Formato de autorización inválido. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Token inválido o expirado"})
		}

		// Strict session check against the DB: only the latest login is valid
		usuario, err := usuarioRepo.FindByID(claims.UsuarioID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		if usuario.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"error": "Sesión expirada (inicio de sesión en otro dispositivo)"})
		}

		c.Locals(sesionKey, &Sesion{
			UsuarioID: claims.UsuarioID,
			Nombre:    claims.Nombre,
			Email:     claims.Email,
			Rol:       claims.Rol,
			Permisos:  claims.Permisos,
		})
		return c.Next()
	}
}

// RequirePermiso checks that the session carries the named permiso
func RequirePermiso(permiso string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sesion := SesionActual(c)
		if sesion == nil {
			return c.Status(403).JSON(fiber.Map{"error": "Sesión no encontrada"})
		}
		if !sesion.TienePermiso(permiso) {
			return c.Status(403).JSON(fiber.Map{
				"error": "No tiene el permiso '" + permiso + "'",
			})
		}
		return c.Next()
	}
}
