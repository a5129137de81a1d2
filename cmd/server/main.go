package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/cart"
	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/config"
	"github.com/SamuelOla04/wig-ecom-store/internal/handlers"
	"github.com/SamuelOla04/wig-ecom-store/internal/mailer"
	"github.com/SamuelOla04/wig-ecom-store/internal/orders"
	"github.com/SamuelOla04/wig-ecom-store/internal/payments"
	"github.com/SamuelOla04/wig-ecom-store/internal/store"
	"github.com/SamuelOla04/wig-ecom-store/internal/webhook"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

// countdownHour is the local hour at which the daily countdown check runs.
const countdownHour = 10

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Catalog and payments
	shopCatalog := catalog.Default()
	paymentService := payments.NewService(shopCatalog, cfg.StripeSecretKey, cfg.BaseURL)

	// 3. Email transport (absence disables email but not payments)
	sender := mailer.NewSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)
	if sender.Configured() {
		slog.Info("Email notifications ready")
	}

	// 4. Order tracking. Orders live in memory unless DB_PATH points at a
	// SQLite file.
	var orderRepo orders.Repository = orders.NewMemoryRepository()
	if cfg.DBPath != "" {
		db, err := store.NewStore(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to open order database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate("migrations"); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		orderRepo = db
		slog.Info("Using SQLite order store", "path", cfg.DBPath)
	}
	tracker := orders.NewTracker(orderRepo, sender)

	// Daily countdown check; pointless without a mail transport.
	if sender.Configured() {
		scheduler := orders.NewScheduler(tracker, countdownHour)
		scheduler.Start()
		defer scheduler.Stop()
		slog.Info("Daily countdown email system active", "hour", countdownHour)
	}

	// 5. Cart session setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	cartRepo := cart.NewSessionRepository(sessionStore)

	// 6. Init Templates
	templates := handlers.NewTemplateCache()
	templates.AddFunc("usd", func(minor int64) string {
		return fmt.Sprintf("$%.2f", float64(minor)/100)
	})
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 7. Setup Handlers
	productHandler := &handlers.ProductHandler{Catalog: shopCatalog}
	checkoutHandler := &handlers.CheckoutHandler{Payments: paymentService}
	webhookHandler := &handlers.WebhookHandler{
		Dispatcher: webhook.NewDispatcher(cfg.StripeWebhookSecret, shopCatalog, tracker),
	}
	cartHandler := &handlers.CartHandler{Repo: cartRepo, Catalog: shopCatalog}
	pagesHandler := &handlers.PagesHandler{
		Catalog:   shopCatalog,
		Payments:  paymentService,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for checkout creation
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Pages
	mux.HandleFunc("/", pagesHandler.Index)
	mux.HandleFunc("GET /success", pagesHandler.Success)
	mux.HandleFunc("GET /cancel", pagesHandler.Cancel)

	// Catalog + checkout API
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productHandler.Get)
	mux.HandleFunc("POST /api/create-checkout-session", rateLimiter.Middleware(checkoutHandler.CreateCheckoutSession))
	mux.HandleFunc("POST /api/create-payment-intent", rateLimiter.Middleware(checkoutHandler.CreatePaymentIntent))

	// Cart API (cookie-backed, CSRF-protected)
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.RequestHeader("X-CSRF-Token"),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port}),
	)
	cartMux := http.NewServeMux()
	cartMux.HandleFunc("GET /api/cart", cartHandler.Get)
	cartMux.HandleFunc("POST /api/cart/add", cartHandler.Add)
	cartMux.HandleFunc("POST /api/cart/update", cartHandler.Update)
	cartMux.HandleFunc("POST /api/cart/remove", cartHandler.Remove)
	mux.Handle("/api/cart", CSRF(cartMux))
	mux.Handle("/api/cart/", CSRF(cartMux))

	// Stripe webhook. Raw body, no CSRF, no rate limiting.
	mux.HandleFunc("POST /webhook", webhookHandler.Handle)

	// Wrap the router with middleware chain
	// Chain: Logger -> Recover -> Security Headers -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.RecoverMiddleware(
			handlers.SecurityHeadersMiddleware(mux),
		),
	)

	// 8. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine to start the server
	go func() {
		slog.Info("Server starting", "port", cfg.Port, "base_url", cfg.BaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
