package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMenuList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/menu", NewMenuController().List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		OK   bool `json:"ok"`
		Data []struct {
			Category string `json:"category"`
			Items    []struct {
				Name  string `json:"name"`
				Price int64  `json:"price"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK {
		t.Fatal("ok = false")
	}
	if len(body.Data) != 2 {
		t.Fatalf("groups = %d, want 2", len(body.Data))
	}
	if body.Data[0].Category != "Box of 4 - Single Flavor Bundles" || len(body.Data[0].Items) != 6 {
		t.Fatalf("first group = %+v", body.Data[0])
	}
	if body.Data[1].Category != "Box of 4 - Assorted Bundles" || len(body.Data[1].Items) != 2 {
		t.Fatalf("second group = %+v", body.Data[1])
	}
}
