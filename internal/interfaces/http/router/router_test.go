package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cartapp "github.com/aromatta/backend/internal/application/cart"
	catalogapp "github.com/aromatta/backend/internal/application/catalog"
	chatapp "github.com/aromatta/backend/internal/application/chat"
	favoritesapp "github.com/aromatta/backend/internal/application/favorites"
	identityapp "github.com/aromatta/backend/internal/application/identity"
	notificationapp "github.com/aromatta/backend/internal/application/notification"
	orderapp "github.com/aromatta/backend/internal/application/order"
	reviewapp "github.com/aromatta/backend/internal/application/review"
	"github.com/aromatta/backend/internal/infrastructure/auth"
	"github.com/aromatta/backend/internal/infrastructure/config"
	"github.com/aromatta/backend/internal/infrastructure/event"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"github.com/aromatta/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, msg string) (string, error) {
	return "eco: " + msg, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	store := kv.NewMemoryStore()
	bus := event.NewInMemoryEventBus(log)
	ctx := context.Background()

	jwtService := auth.NewJWTService(auth.Config{
		Secret:     "test-secret-0123456789abcdef0123",
		Expiration: time.Hour,
		Issuer:     "aromatta-backend",
	})

	catalogSvc, err := catalogapp.NewService(ctx, store, bus, log)
	require.NoError(t, err)
	identitySvc, err := identityapp.NewService(ctx, store, jwtService, 0, log)
	require.NoError(t, err)
	cartSvc, err := cartapp.NewService(ctx, store, bus, catalogSvc, log)
	require.NoError(t, err)
	orderSvc, err := orderapp.NewService(ctx, store, bus, cartSvc, log)
	require.NoError(t, err)
	favoritesSvc, err := favoritesapp.NewService(ctx, store, catalogSvc, log)
	require.NoError(t, err)
	reviewSvc, err := reviewapp.NewService(ctx, store, catalogSvc, log)
	require.NoError(t, err)
	notificationSvc := notificationapp.NewService(log)
	chatSvc := chatapp.NewService(echoCompleter{}, time.Second, log)

	bus.Subscribe(notificationapp.NewLowStockWatcher(notificationSvc, log))
	bus.Subscribe(notificationapp.NewOrderPlacedHandler(notificationSvc))

	cfg := &config.Config{
		App: config.AppConfig{Name: "aromatta-backend", Env: "test", Port: "0"},
		HTTP: config.HTTPConfig{
			MaxBodySize: 1 << 20,
		},
	}

	return New(cfg, log, jwtService, Handlers{
		System:       handler.NewSystemHandler("test"),
		Auth:         handler.NewAuthHandler(identitySvc),
		Product:      handler.NewProductHandler(catalogSvc, reviewSvc),
		Cart:         handler.NewCartHandler(cartSvc),
		Order:        handler.NewOrderHandler(orderSvc),
		Favorite:     handler.NewFavoriteHandler(favoritesSvc),
		Notification: handler.NewNotificationHandler(notificationSvc),
		Review:       handler.NewReviewHandler(reviewSvc),
		Chat:         handler.NewChatHandler(chatSvc),
	})
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "response: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestRouter_Health(t *testing.T) {
	engine := newTestRouter(t)
	rec := doJSON(t, engine, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProductListAndFilters(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	decodeData(t, rec, &products)
	assert.Len(t, products, 14)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/products?category=caf%C3%A9", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &products)
	assert.Len(t, products, 4)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/products?q=vivero", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &products)
	assert.Len(t, products, 2)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/products/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Two units of the fertilizer land at 70000; asking for a hundred units
// clamps to the 60 in stock; removing the line zeroes the cart.
func TestRouter_CartQuantityClamping(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": 7, "quantity": 2}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Subtotal int64 `json:"subtotal"`
		Total    int64 `json:"total"`
		Items    []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	decodeData(t, rec, &summary)
	assert.Equal(t, int64(70000), summary.Subtotal)

	rec = doJSON(t, engine, http.MethodPut, "/api/v1/cart/items/7",
		map[string]any{"quantity": 100}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &summary)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 60, summary.Items[0].Quantity)
	assert.Equal(t, int64(2100000), summary.Subtotal)

	rec = doJSON(t, engine, http.MethodDelete, "/api/v1/cart/items/7", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &summary)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)
}

func TestRouter_CouponFlow(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": 1, "quantity": 2}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/cart/coupon",
		map[string]any{"code": "CAFE10"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Discount int64 `json:"discount"`
		Total    int64 `json:"total"`
	}
	decodeData(t, rec, &summary)
	assert.Equal(t, int64(9000), summary.Discount)
	assert.Equal(t, int64(81000), summary.Total)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/cart/coupon",
		map[string]any{"code": "FALSO99"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_AuthAndSellerFlow(t *testing.T) {
	engine := newTestRouter(t)

	// Product creation requires a seller session.
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/products",
		map[string]any{"name": "x", "price": 1000, "category": "Café", "seller": "s", "stock": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Carlos", "email": "carlos@example.com", "password": "secreto123", "role": "seller",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var authResult struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeData(t, rec, &authResult)
	require.NotEmpty(t, authResult.Token)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Café del Vendedor", "price": 50000, "category": "Café", "seller": "Carlos", "stock": 5,
	}, authResult.Token)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// A buyer session cannot create listings.
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Lucía", "email": "lucia@example.com", "password": "secreto123", "role": "buyer",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var buyer struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &buyer)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Otro", "price": 1000, "category": "Café", "seller": "Lucía", "stock": 1,
	}, buyer.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Duplicate registration conflicts.
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Carlos", "email": "CARLOS@example.com", "password": "secreto123", "role": "seller",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_CheckoutFlow(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Ana", "email": "ana@example.com", "password": "secreto123", "role": "buyer",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var authResult struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &authResult)

	// Checkout with an empty cart is rejected.
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/orders", nil, authResult.Token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"productId": 1, "quantity": 2}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/orders", nil, authResult.Token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}
	decodeData(t, rec, &placed)
	assert.Equal(t, "pending", placed.Status)
	assert.Equal(t, int64(90000), placed.Total)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/orders", nil, authResult.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	decodeData(t, rec, &orders)
	assert.Len(t, orders, 1)

	// The checkout raised an order notification.
	rec = doJSON(t, engine, http.MethodGet, "/api/v1/notifications", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []struct {
		Type string `json:"type"`
	}
	decodeData(t, rec, &notifications)
	require.NotEmpty(t, notifications)
	assert.Equal(t, "order", notifications[0].Type)
}

func TestRouter_LowStockNotificationOnUpdate(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name": "Carlos", "email": "carlos@example.com", "password": "secreto123", "role": "seller",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var seller struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &seller)

	rec = doJSON(t, engine, http.MethodPut, "/api/v1/products/1",
		map[string]any{"stock": 2}, seller.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/notifications", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	decodeData(t, rec, &notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "stock", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "solo 2 unidades")
}

func TestRouter_FavoritesFlow(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/favorites/13/toggle", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/favorites", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var favorites []struct {
		ID int64 `json:"id"`
	}
	decodeData(t, rec, &favorites)
	require.Len(t, favorites, 1)
	assert.Equal(t, int64(13), favorites[0].ID)

	rec = doJSON(t, engine, http.MethodDelete, "/api/v1/favorites/13", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_ChatFlow(t *testing.T) {
	engine := newTestRouter(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/chat/messages",
		map[string]any{"text": "hola"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var reply struct {
		From string `json:"from"`
		Text string `json:"text"`
	}
	decodeData(t, rec, &reply)
	assert.Equal(t, "bot", reply.From)
	assert.Equal(t, "eco: hola", reply.Text)

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/chat/messages", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var transcript []map[string]any
	decodeData(t, rec, &transcript)
	assert.Len(t, transcript, 3)
}
