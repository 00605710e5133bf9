package handlers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/dashboard"
	"github.com/BruksfildServices01/salon-console/internal/session"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates monta as páginas do console para gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"brl": func(v float64) string { return fmt.Sprintf("R$ %.2f", v) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))
}

type AppWebHandler struct {
	holder    *session.Holder
	dashboard *dashboard.Service
	config    *config.Config
}

func NewAppWebHandler(holder *session.Holder, svc *dashboard.Service, cfg *config.Config) *AppWebHandler {
	return &AppWebHandler{holder: holder, dashboard: svc, config: cfg}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "login",
	})
}

// Dashboard renderiza o painel no servidor. Sem sessão válida volta
// para o login.
func (h *AppWebHandler) Dashboard(c *gin.Context) {
	id, _ := c.Cookie(h.config.CookieName)

	s, err := h.holder.Resume(c.Request.Context(), id)
	if errors.Is(err, session.ErrNoSession) {
		c.Redirect(http.StatusFound, "/web/app/login")
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "base", gin.H{
			"Page":  "dashboard",
			"Error": "Erro ao carregar a sessão.",
		})
		return
	}

	data, err := h.dashboard.Load(c.Request.Context(), s)
	if err != nil {
		c.HTML(http.StatusBadGateway, "base", gin.H{
			"Page":  "dashboard",
			"User":  s.User(),
			"Error": "Erro ao carregar dados do dashboard",
		})
		return
	}

	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "dashboard",
		"User": s.User(),
		"Data": data,
	})
}
