package ingredient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupIngredientTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryRepository()))
	r.POST("/ingredients", handler.CreateIngredient)

	return r
}

func TestCreateIngredient_HandlerMalformedZone(t *testing.T) {
	r := setupIngredientTestRouter()

	body, _ := json.Marshal(map[string]string{"name": "Sel", "unit": "g", "zone_id": "not-a-uuid"})
	req := httptest.NewRequest(http.MethodPost, "/ingredients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != ErrUnknownZone.Error() {
		t.Fatalf("unexpected message %q", resp["error"])
	}
}

func TestCreateIngredient_HandlerExistingIsOK(t *testing.T) {
	r := setupIngredientTestRouter()

	body, _ := json.Marshal(map[string]string{"name": "Sel"})
	for i, want := range []int{http.StatusCreated, http.StatusOK} {
		req := httptest.NewRequest(http.MethodPost, "/ingredients", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != want {
			t.Fatalf("call %d: expected %d, got %d", i, want, w.Code)
		}
	}
}
