package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"crumella-backend/entity"
	"crumella-backend/repository"
	"crumella-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ctrlDBSeq atomic.Int64

func ctrlTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_test_%d?mode=memory&cache=shared", ctrlDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Voucher{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func voucherRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	vc := NewVoucherController(services.NewVoucherService(repository.NewVoucherRepository(db)))
	r := gin.New()
	r.POST("/vouchers/validate", vc.Validate)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestVoucherValidateEndpoint(t *testing.T) {
	db := ctrlTestDB(t)
	if err := db.Create(&entity.Voucher{
		Code: "BAKE50", DiscountType: entity.DiscountFixed, Value: 5000, IsActive: true,
	}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := voucherRouter(t, db)

	w := postJSON(r, "/vouchers/validate", `{"code":"BAKE50","subtotal":30000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Code     string `json:"code"`
			Discount int64  `json:"discount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.OK || body.Data.Discount != 5000 {
		t.Fatalf("body = %+v", body)
	}

	// preview must not consume a use
	var v entity.Voucher
	db.Where("code = ?", "BAKE50").First(&v)
	if v.UsedCount != 0 {
		t.Fatalf("UsedCount = %d after preview", v.UsedCount)
	}
}

func TestVoucherValidateEndpointErrors(t *testing.T) {
	db := ctrlTestDB(t)
	past := time.Now().Add(-24 * time.Hour)
	if err := db.Create(&entity.Voucher{
		Code: "OLD10", DiscountType: entity.DiscountPercent, Value: 10, ExpiresAt: &past, IsActive: true,
	}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := voucherRouter(t, db)

	cases := []struct {
		name, body string
		contains   string
	}{
		{"unknown code", `{"code":"NOPE","subtotal":30000}`, "invalid"},
		{"expired code", `{"code":"OLD10","subtotal":30000}`, "expired"},
		{"missing subtotal", `{"code":"OLD10"}`, "Subtotal"},
	}
	for _, c := range cases {
		w := postJSON(r, "/vouchers/validate", c.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", c.name, w.Code)
		}
		if !strings.Contains(w.Body.String(), c.contains) {
			t.Errorf("%s: body %s missing %q", c.name, w.Body, c.contains)
		}
	}
}
