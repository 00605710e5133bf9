package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/dashboard"
	"github.com/BruksfildServices01/salon-console/internal/httpresp"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get agrega as quatro listas. Qualquer falha derruba o painel inteiro;
// não há resultado parcial.
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.service.Load(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		writeError(c, err, "failed_to_load_dashboard", "Erro ao carregar dados do dashboard")
		return
	}
	httpresp.OK(c, data)
}
