package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartduka/auth"
	"smartduka/cart"
	"smartduka/mq"
	"smartduka/orders"
	"smartduka/pay"
	"smartduka/products"
	"smartduka/rdx"
	"smartduka/realtime"
	"smartduka/routes"
	"smartduka/store"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rdx.Ping()
	products.Seed(context.Background())

	// session stores, persisted to Redis
	persister := &store.RedisPersister{Conn: rdx.Conn}
	mgr := store.NewManager(persister, func(session, event string) {
		log.Printf("store event %q for session %s", event, session)
	})

	// realtime channel: in-memory hub + websocket fan-out + simulator
	hub := realtime.NewHub()
	sim := realtime.NewSimulator(hub, 0)
	wsHandler := realtime.NewHandler(hub)
	fleet := realtime.NewFleet(sim)

	orderHandler := orders.NewHandler(mgr)
	paySvc := pay.NewService(rdx.Conn, orderHandler)
	orderHandler.Pay = paySvc

	cartHandler := cart.NewHandler(mgr)
	authHandler := auth.NewHandler(mgr)

	// bridge Redis status events into the hub and session stores
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go mq.StartStatusWorker(workerCtx, hub, orderHandler)

	router := httprouter.New()
	router.GET("/health", Index)
	routes.AddStaticRoutes(router)
	routes.AddAuthRoutes(router, authHandler)
	routes.AddProductRoutes(router)
	routes.AddCartRoutes(router, cartHandler)
	routes.AddOrderRoutes(router, orderHandler)
	routes.AddPaymentRoutes(router, paySvc)
	routes.AddBookingRoutes(router)
	routes.AddRealtimeRoutes(router, wsHandler, fleet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		ExposedHeaders:   []string{"X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("🛑 Stopping telemetry simulations...")
		sim.StopAll()
		stopWorker()
	})

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
