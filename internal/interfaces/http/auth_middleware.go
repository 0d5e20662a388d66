package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/pkg/jwt"
)

// Locals keys para identidade do ator no Fiber.
const (
	LocalUserID          = "user_id"
	LocalEstablishmentID = "establishment_id"
	LocalRole            = "role"
)

// AuthMiddleware valida o Bearer Token JWT e carrega identidade em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, establishmentID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem claim de papel"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEstablishmentID, establishmentID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza somente os papéis listados. Usar depois do AuthMiddleware.
// A autorização fina (papel × status × destino) continua nos casos de uso;
// este filtro só corta cedo o que nunca seria permitido.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	}
}

// GetActor monta o ator do domínio a partir dos locals.
func GetActor(c *fiber.Ctx) domain.Actor {
	return domain.Actor{
		EstablishmentID: GetEstablishmentID(c),
		UserID:          GetUserID(c),
		Role:            GetRole(c),
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEstablishmentID devolve o EstablishmentID do contexto.
func GetEstablishmentID(c *fiber.Ctx) string {
	return localString(c, LocalEstablishmentID)
}

// GetRole devolve o papel do contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
