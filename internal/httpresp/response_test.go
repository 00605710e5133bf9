package httpresp

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPage(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7}

	if got := Page(data, 2, 5); len(got) != 2 || got[0] != 6 {
		t.Fatalf("unexpected page 2: %v", got)
	}
	if got := Page(data, 3, 5); len(got) != 0 {
		t.Fatalf("page past the end should be empty, got %v", got)
	}
	if got := Page(data, 4611686018427387905, 2); len(got) != 0 {
		t.Fatalf("huge page should be empty, got %v", got)
	}
}

func TestListHugePageDoesNotPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/clients?page=4611686018427387905&limit=2", nil)

	List(c, []string{"a", "b", "c"})

	var body ListResponse[string]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != 200 || body.Total != 3 || len(body.Data) != 0 {
		t.Fatalf("unexpected response %d %+v", rec.Code, body)
	}
}

func TestListPaginatesOnRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/clients?page=2", nil)

	List(c, []string{"a", "b", "c", "d", "e", "f"})

	var body ListResponse[string]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 6 || body.Limit != 5 || len(body.Data) != 1 || body.Data[0] != "f" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestListWithoutPageReturnsAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/clients", nil)

	List[string](c, nil)

	var body ListResponse[string]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data == nil || body.Total != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", body)
	}
}
