package paymentControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/julddllc/christmasfun-api/models"
)

type fakeCreator struct {
	lastReq *SessionRequest
	sess    *Session
	err     error
}

func (f *fakeCreator) CreateSession(_ context.Context, req SessionRequest) (*Session, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))

	products := []models.Product{
		{Code: "design-snowman", Kind: models.ProductKindSingle, Name: "Jolly Snowman", PriceReference: "price_design_snowman", PriceCents: 99},
		{Code: "note-santa-1", Kind: models.ProductKindNote, Name: "Santa Note #1", PriceReference: "price_note_santa_1", PriceCents: 199},
	}
	require.NoError(t, db.Create(&products).Error)
	return db
}

func newCheckoutRouter(db *gorm.DB, creator SessionCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/functions/v1/create-checkout-session", CreateCheckoutSessionHandler(db, creator))
	return r
}

func postCheckout(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-checkout-session", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckoutSessionRecordsPendingOrder(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{sess: &Session{ID: "cs_test_123", URL: "https://pay.example/session/abc"}}
	r := newCheckoutRouter(db, creator)

	body := `{"items":[{"priceReference":"price_design_snowman","quantity":1},{"priceReference":"price_note_santa_1","quantity":1}],"customerEmail":"buyer@example.com"}`
	w := postCheckout(r, body, map[string]string{"X-Idempotency-Key": "tok-123"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://pay.example/session/abc", resp["url"])

	require.NotNil(t, creator.lastReq)
	assert.Equal(t, "buyer@example.com", creator.lastReq.CustomerEmail)
	assert.Len(t, creator.lastReq.Items, 2)

	var order models.Order
	require.NoError(t, db.Preload("Items").Where("stripe_session_id = ?", "cs_test_123").First(&order).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "buyer@example.com", order.CustomerEmail)
	assert.Equal(t, "tok-123", order.IdempotencyKey)
	assert.Equal(t, int64(99+199), order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "design-snowman", order.Items[0].ProductCode)
}

func TestCreateCheckoutSessionLegacySingleItemBody(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{sess: &Session{ID: "cs_legacy_1", URL: "https://pay.example/session/legacy"}}
	r := newCheckoutRouter(db, creator)

	body := `{"productId":"design-snowman","priceReference":"price_design_snowman","customerEmail":"buyer@example.com"}`
	w := postCheckout(r, body, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").Where("stripe_session_id = ?", "cs_legacy_1").First(&order).Error)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "design-snowman", order.Items[0].ProductCode)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestCreateCheckoutSessionInvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{sess: &Session{ID: "cs_x", URL: "https://pay.example/x"}}
	r := newCheckoutRouter(db, creator)

	body := `{"items":[{"priceReference":"price_design_snowman","quantity":1}],"customerEmail":"not-an-email"}`
	w := postCheckout(r, body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email")
	assert.Nil(t, creator.lastReq)
}

func TestCreateCheckoutSessionEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{}
	r := newCheckoutRouter(db, creator)

	w := postCheckout(r, `{"items":[],"customerEmail":"buyer@example.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty cart")
	assert.Nil(t, creator.lastReq)
}

func TestCreateCheckoutSessionUnknownPriceReference(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{}
	r := newCheckoutRouter(db, creator)

	body := `{"items":[{"priceReference":"price_nope","quantity":1}],"customerEmail":"buyer@example.com"}`
	w := postCheckout(r, body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown price reference")
	assert.Nil(t, creator.lastReq)
}

func TestCreateCheckoutSessionMissingStripeConfig(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{err: ErrNotConfigured}
	r := newCheckoutRouter(db, creator)

	body := `{"items":[{"priceReference":"price_design_snowman","quantity":1}],"customerEmail":"buyer@example.com"}`
	w := postCheckout(r, body, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "payment service unavailable")

	// Nothing was recorded.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	db := setupTestDB(t)
	creator := &fakeCreator{err: fmt.Errorf("card declined")}
	r := newCheckoutRouter(db, creator)

	body := `{"items":[{"priceReference":"price_design_snowman","quantity":1}],"customerEmail":"buyer@example.com"}`
	w := postCheckout(r, body, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "card declined")
}
