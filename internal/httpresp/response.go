package httpresp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 5

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List devolve a lista inteira, ou uma página dela quando ?page= é
// informado. A paginação é feita aqui porque o backend não pagina.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}

	if c.Query("page") == "" {
		c.JSON(http.StatusOK, ListResponse[T]{
			Data:  data,
			Total: len(data),
		})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}

	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  Page(data, page, limit),
		Total: len(data),
		Page:  page,
		Limit: limit,
	})
}

func Page[T any](data []T, page, limit int) []T {
	// compara em páginas antes de multiplicar: page enorme estoura int
	if page <= 0 || limit <= 0 || page-1 >= (len(data)+limit-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := start + limit
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}
