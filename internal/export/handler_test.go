package export

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grocerylist/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupExportTestRouter(userID *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryRepository()))

	r.Use(func(c *gin.Context) {
		c.Set(middleware.KeyUserID, *userID)
		c.Next()
	})
	r.POST("/grocery/exports", handler.Request)
	r.GET("/grocery/exports/:id", handler.Get)

	return r
}

func TestRequestAndGet_Handler(t *testing.T) {
	user := "user-1"
	r := setupExportTestRouter(&user)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/grocery/exports", nil))
	require.Equal(t, http.StatusAccepted, w.Code)

	var e Export
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	require.Equal(t, StatusPending, e.Status)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grocery/exports/"+e.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	user = "user-2"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grocery/exports/"+e.ID, nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_HandlerUnknownID(t *testing.T) {
	user := "user-1"
	r := setupExportTestRouter(&user)

	for _, id := range []string{"latest", "7e6d5c4b-3a29-4180-9f7e-6d5c4b3a2918"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grocery/exports/"+id, nil))
		require.Equal(t, http.StatusNotFound, w.Code, "id=%s", id)
	}
}
