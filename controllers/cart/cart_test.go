package cartcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Abumalik01/mauma-backend/auth"
	"github.com/Abumalik01/mauma-backend/middleware"
	"github.com/Abumalik01/mauma-backend/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// one connection only: every sqlite :memory: connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken(testSecret))
	cartGroup.GET("", GetCart(db))
	cartGroup.POST("", AddToCart(db))
	cartGroup.PUT("/:id", UpdateCartItem(db))
	cartGroup.DELETE("/:id", RemoveFromCart(db))
	return r
}

func newUser(t *testing.T, db *gorm.DB, name string) (models.User, string) {
	t.Helper()
	user := models.User{Username: name, Email: name + "@example.com", PasswordHash: "-"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := auth.IssueToken(testSecret, user.ID, false, false, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return user, token
}

func newProduct(t *testing.T, db *gorm.DB, name string, price float64, active bool) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, IsActive: active}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Success   bool                       `json:"success"`
	CartItems []models.CartItemResponse  `json:"cart_items"`
	Total     float64                    `json:"total"`
	Count     int                        `json:"count"`
}

func readCart(t *testing.T, r *gin.Engine, token string) cartResponse {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/cart", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/cart = %d, body %s", w.Code, w.Body.String())
	}
	var resp cartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return resp
}

func TestAddIncrementsExistingRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := newUser(t, db, "alice")
	p := newProduct(t, db, "Headphones", 45000, true)

	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":2}`); w.Code != http.StatusOK {
		t.Fatalf("first add = %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":3}`); w.Code != http.StatusOK {
		t.Fatalf("second add = %d, body %s", w.Code, w.Body.String())
	}

	var items []models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", user.ID, p.ID).Find(&items).Error; err != nil {
		t.Fatalf("fetch rows: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("rows = %d, want 1", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := newUser(t, db, "alice")
	newProduct(t, db, "Headphones", 45000, true)

	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1}`); w.Code != http.StatusOK {
		t.Fatalf("add = %d, body %s", w.Code, w.Body.String())
	}

	var item models.CartItem
	if err := db.Where("user_id = ?", user.ID).First(&item).Error; err != nil {
		t.Fatalf("fetch row: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
}

func TestAddValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := newUser(t, db, "alice")
	newProduct(t, db, "Headphones", 45000, true)
	newProduct(t, db, "Retired", 10000, false)

	// product_id missing
	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"quantity":1}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing product_id = %d, want 400", w.Code)
	}
	// nonexistent product
	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":99}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown product = %d, want 404", w.Code)
	}
	// inactive product
	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":2}`); w.Code != http.StatusNotFound {
		t.Errorf("inactive product = %d, want 404", w.Code)
	}
	// negative quantity
	if w := doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":-2}`); w.Code != http.StatusBadRequest {
		t.Errorf("negative quantity = %d, want 400", w.Code)
	}
}

func TestUpdateQuantityZeroDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	user, token := newUser(t, db, "alice")
	newProduct(t, db, "Headphones", 45000, true)

	doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":2}`)

	var item models.CartItem
	if err := db.Where("user_id = ?", user.ID).First(&item).Error; err != nil {
		t.Fatalf("fetch row: %v", err)
	}

	if w := doJSON(r, http.MethodPut, "/api/cart/1", token, `{"quantity":0}`); w.Code != http.StatusOK {
		t.Fatalf("update to 0 = %d, body %s", w.Code, w.Body.String())
	}

	if resp := readCart(t, r, token); resp.Count != 0 {
		t.Errorf("cart count after zero update = %d, want 0", resp.Count)
	}
}

func TestUpdateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := newUser(t, db, "alice")
	_, otherToken := newUser(t, db, "bob")
	newProduct(t, db, "Headphones", 45000, true)

	doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":2}`)

	if w := doJSON(r, http.MethodPut, "/api/cart/1", token, `{"quantity":-1}`); w.Code != http.StatusBadRequest {
		t.Errorf("negative quantity = %d, want 400", w.Code)
	}
	// another user's row is invisible
	if w := doJSON(r, http.MethodPut, "/api/cart/1", otherToken, `{"quantity":3}`); w.Code != http.StatusNotFound {
		t.Errorf("foreign row update = %d, want 404", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/api/cart/99", token, `{"quantity":3}`); w.Code != http.StatusNotFound {
		t.Errorf("missing row update = %d, want 404", w.Code)
	}

	// overwrite, not increment
	if w := doJSON(r, http.MethodPut, "/api/cart/1", token, `{"quantity":7}`); w.Code != http.StatusOK {
		t.Fatalf("update = %d", w.Code)
	}
	var item models.CartItem
	if err := db.First(&item, 1).Error; err != nil {
		t.Fatalf("fetch row: %v", err)
	}
	if item.Quantity != 7 {
		t.Errorf("quantity = %d, want 7", item.Quantity)
	}
}

func TestRemoveFromCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := newUser(t, db, "alice")
	_, otherToken := newUser(t, db, "bob")
	newProduct(t, db, "Headphones", 45000, true)

	doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1}`)

	if w := doJSON(r, http.MethodDelete, "/api/cart/1", otherToken, ""); w.Code != http.StatusNotFound {
		t.Errorf("foreign row delete = %d, want 404", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/api/cart/1", token, ""); w.Code != http.StatusOK {
		t.Errorf("delete = %d, want 200", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/api/cart/1", token, ""); w.Code != http.StatusNotFound {
		t.Errorf("repeat delete = %d, want 404", w.Code)
	}
}

func TestCartTotalSkipsDeletedProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, token := newUser(t, db, "alice")
	newProduct(t, db, "Headphones", 45000, true)
	doomed := newProduct(t, db, "Doomed", 10000, true)

	doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":1,"quantity":2}`)
	doJSON(r, http.MethodPost, "/api/cart", token, `{"product_id":2,"quantity":1}`)

	if err := db.Delete(&doomed).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}

	resp := readCart(t, r, token)
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2 (dangling row still listed)", resp.Count)
	}
	if resp.Total != 90000 {
		t.Errorf("total = %v, want 90000 (deleted product excluded)", resp.Total)
	}
	for _, item := range resp.CartItems {
		if item.ProductID == doomed.ID && item.Product != nil {
			t.Error("deleted product still serialized on its cart row")
		}
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	_, aliceToken := newUser(t, db, "alice")
	_, bobToken := newUser(t, db, "bob")
	newProduct(t, db, "Headphones", 45000, true)

	doJSON(r, http.MethodPost, "/api/cart", aliceToken, `{"product_id":1,"quantity":2}`)

	if resp := readCart(t, r, bobToken); resp.Count != 0 {
		t.Errorf("bob sees %d items from alice's cart", resp.Count)
	}
}

func TestCartRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	if w := doJSON(r, http.MethodGet, "/api/cart", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", w.Code)
	}
	expired, err := auth.IssueToken(testSecret, 1, false, false, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	w := doJSON(r, http.MethodGet, "/api/cart", expired, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "expired") {
		t.Errorf("expired token not reported distinctly: %s", w.Body.String())
	}
}
