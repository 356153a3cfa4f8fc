package context

import (
	"dropmarks/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal stores the authenticated user on echo.Context.
const KeyPrincipal ContextKey = "principal"

func SetPrincipal(c echo.Context, user *entity.User) {
	c.Set(string(KeyPrincipal), user)
}

// GetPrincipal returns the user authenticated for this request, if any.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyPrincipal)).(*entity.User)

	return user, ok && user != nil
}
