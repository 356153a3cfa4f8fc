package handler

import (
	"net/http"
	"time"

	deliverycontext "dropmarks/internal/delivery/context"
	"dropmarks/internal/delivery/http/response"
	domainerrors "dropmarks/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PrincipalResponse is the public view of the authenticated user.
type PrincipalResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type PrincipalHandler struct{}

func NewPrincipalHandler() *PrincipalHandler {
	return &PrincipalHandler{}
}

// Me returns the principal authenticated by the basic auth middleware.
func (h *PrincipalHandler) Me(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	return response.Success(c, http.StatusOK, PrincipalResponse{
		ID:        principal.ID,
		Username:  principal.Username,
		CreatedAt: principal.CreatedAt,
	}, "")
}

// HealthCheck handles health check requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	}, "Service is running")
}
