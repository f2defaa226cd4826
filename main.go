package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harborview/accounts-backend/internal/accounts"
	"github.com/harborview/accounts-backend/internal/config"
	"github.com/harborview/accounts-backend/internal/db"
	"github.com/harborview/accounts-backend/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Welcome! This is the accounts backend. See /users, /login, /dashboard and /logout.")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := accounts.Init(gdb); err != nil {
		log.Fatal("Failed to set up accounts tables: ", err)
	}

	users := accounts.NewUserStore(gdb)
	sessions := accounts.NewSessionManager(accounts.NewSessionStore(gdb))
	handler := accounts.NewHandler(users, sessions, cfg.IsProduction())

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)
	accounts.RegisterRoutes(r, handler)

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
