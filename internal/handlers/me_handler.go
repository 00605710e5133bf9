package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	s := middleware.SessionFrom(c)
	if s == nil || s.User() == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	u := s.User()
	c.JSON(http.StatusOK, gin.H{
		"user":     u,
		"is_admin": u.Perfil == models.PerfilAdmin,
	})
}
