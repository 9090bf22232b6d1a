package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront-backend/api/controllers"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/notifications"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/angelmondragon/storefront-backend/pkg/redis"
)

type notificationFeed interface {
	Recent(sessionID string) []notifications.Notification
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	catalogStore controllers.CatalogReader,
	cartService cart.Service,
	feed notificationFeed,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.Origins),
	)

	// A nil *redis.Client must not reach the middlewares as a non-nil interface.
	var (
		idempotencyStore redis.IdempotencyStore
		readyPinger      redis.Pinger
		cartPolicy       = middleware.NewRateLimitPolicy("cart", cfg.RateLimit.CartWindow, cfg.RateLimit.CartLimit)
		cartRateLimit    = func(next http.Handler) http.Handler { return next }
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		readyPinger = redisClient
		cartRateLimit = middleware.RateLimit(cartPolicy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, len(catalogStore.Products()), readyPinger))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(catalogStore))
			r.Get("/{categoryId}", controllers.GetCategory(catalogStore, logg))
			r.Get("/{categoryId}/products", controllers.ListCategoryProducts(catalogStore, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogStore, logg))
			r.Get("/featured", controllers.ListFeaturedProducts(catalogStore))
			r.Get("/{productId}", controllers.GetProduct(catalogStore, logg))
			r.Get("/{productId}/related", controllers.ListRelatedProducts(catalogStore, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Use(cartRateLimit)

			r.Get("/", controllers.CartGet(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Get("/summary", controllers.CartSummary(cartService, logg))
			r.Get("/notifications", controllers.CartNotifications(feed, logg))
			// Inline so the idempotency rules see the full route pattern.
			r.With(middleware.Idempotency(idempotencyStore, logg)).Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})
	})

	return r
}
