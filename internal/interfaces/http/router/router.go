package router

import (
	"github.com/aromatta/backend/internal/infrastructure/auth"
	"github.com/aromatta/backend/internal/infrastructure/config"
	"github.com/aromatta/backend/internal/infrastructure/logger"
	"github.com/aromatta/backend/internal/interfaces/http/handler"
	"github.com/aromatta/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System       *handler.SystemHandler
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Favorite     *handler.FavoriteHandler
	Notification *handler.NotificationHandler
	Review       *handler.ReviewHandler
	Chat         *handler.ChatHandler
}

// New builds the gin engine with the full middleware stack and routes
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.RegisterValidations()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	authRequired := middleware.RequireAuth(jwtService)
	sellerOnly := middleware.RequireRole("seller", "admin")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/session", h.Auth.Session)
		authGroup.PUT("/profile", authRequired, h.Auth.UpdateProfile)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.GET("/:id/reviews", h.Product.Reviews)
		products.POST("", authRequired, sellerOnly, h.Product.Create)
		products.PUT("/:id", authRequired, sellerOnly, h.Product.Update)
		products.DELETE("/:id", authRequired, sellerOnly, h.Product.Delete)
	}

	cart := api.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.UpdateItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.POST("/coupon", h.Cart.ApplyCoupon)
		cart.DELETE("/coupon", h.Cart.RemoveCoupon)
	}

	orders := api.Group("/orders", authRequired)
	{
		orders.POST("", h.Order.Checkout)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", sellerOnly, h.Order.UpdateStatus)
	}

	favorites := api.Group("/favorites")
	{
		favorites.GET("", h.Favorite.List)
		favorites.POST("/:id/toggle", h.Favorite.Toggle)
		favorites.DELETE("/:id", h.Favorite.Remove)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("", h.Notification.Create)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.PUT("/read-all", h.Notification.MarkAllAsRead)
		notifications.PUT("/:id/read", h.Notification.MarkAsRead)
		notifications.DELETE("/:id", h.Notification.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", authRequired, h.Review.Create)
		reviews.GET("/mine", authRequired, h.Review.Mine)
	}

	chat := api.Group("/chat")
	{
		chat.POST("/messages", h.Chat.Send)
		chat.GET("/messages", h.Chat.Transcript)
		chat.DELETE("/messages", h.Chat.Reset)
	}

	return engine
}
