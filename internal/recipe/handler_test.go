package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocerylist/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupRecipeTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service, _ := newTestService()
	handler := NewHandler(service)

	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyUserID, "user-1")
		c.Next()
	})
	r.GET("/recipes", handler.Load)
	r.POST("/recipes", handler.Create)
	r.GET("/recipes/:id", handler.Get)

	return r
}

func TestCreateRecipe_Handler(t *testing.T) {
	r := setupRecipeTestRouter()

	body, _ := json.Marshal(map[string]any{
		"name":        "Pâtes tomate",
		"ingredients": map[string]string{ingTomate: "3", ingPates: "100"},
	})
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Detail
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	req = httptest.NewRequest(http.MethodGet, "/recipes/"+created.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCreateRecipe_ValidationMessage(t *testing.T) {
	r := setupRecipeTestRouter()

	body, _ := json.Marshal(map[string]any{
		"name":        "Soupe",
		"ingredients": map[string]string{},
	})
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != ErrNoIngredientSelected.Error() {
		t.Fatalf("unexpected message %q", resp["error"])
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	r := setupRecipeTestRouter()

	for _, id := range []string{"missing", "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a"} {
		req := httptest.NewRequest(http.MethodGet, "/recipes/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", id, w.Code)
		}
	}
}

func TestCreateRecipe_MalformedIngredientID(t *testing.T) {
	r := setupRecipeTestRouter()

	body, _ := json.Marshal(map[string]any{
		"name":        "Soupe",
		"ingredients": map[string]string{"tomato": "2"},
	})
	req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != ErrUnknownIngredient.Error() {
		t.Fatalf("unexpected message %q", resp["error"])
	}
}
