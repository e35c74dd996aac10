package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/brainsync/catalog/internal/delivery"
	ws "github.com/brainsync/catalog/internal/delivery/ws"
	"github.com/brainsync/catalog/internal/domain"
	"github.com/brainsync/catalog/internal/infra"
	"github.com/brainsync/catalog/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// ENV
	if err := godotenv.Load(); err != nil {
		log.Println("WARN: no .env file, using process env")
	}

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		panic("DATABASE_URL is not set")
	}

	secret := os.Getenv("AUTH_SECRET")
	if secret == "" {
		panic("AUTH_SECRET is not set")
	}

	// POSTGRES
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		panic("cannot connect pgxpool: " + err.Error())
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		panic("postgres ping failed: " + err.Error())
	}

	// SERVICES
	identity := infra.NewJWTIdentity(secret)

	videoRepo := infra.NewPostgresVideoRepo(pool)
	catalog := domain.NewCatalogService(videoRepo)

	hVideo := delivery.NewVideoHandler(catalog, zl)

	// WS HUB
	hub := ws.NewHub()

	// BROADCAST LISTENER
	go func() {
		for ev := range catalog.Events() {

			type wsEvent struct {
				Action string       `json:"action"`
				Video  models.Video `json:"video"`
			}

			payload, err := json.Marshal(wsEvent{
				Action: ev.Action,
				Video:  ev.Video,
			})
			if err != nil {
				log.Printf("[SEND][ERR] json marshal failed: %v", err)
				continue
			}

			hub.SendToRoom("all", payload)
			if ev.Video.Category != "" && ev.Video.Category != "all" {
				hub.SendToRoom(ev.Video.Category, payload)
			}
		}
	}()

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Auth", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(delivery.Recoverer)
	r.Use(delivery.IdentityMiddleware(identity))

	delivery.RegisterRoutes(r, hVideo)

	r.Get("/ws", ws.Handler(hub))

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": port},
	})

	if err := http.ListenAndServe(":"+port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
