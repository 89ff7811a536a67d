package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

// RBAC enforces role-based access control: the caller's role set must contain
// the required role. Pure predicate, no side effects.
func RBAC(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get("roles").([]string)
			for _, r := range roles {
				if domain.Role(r) == required {
					return next(c)
				}
			}
			// Opaque on purpose: no detail about which role was required.
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
