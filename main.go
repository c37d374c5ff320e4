package main

import (
	auth "Aerostat/internal/auth"
	airship "Aerostat/internal/calc/airship"
	atmosphere "Aerostat/internal/calc/atmosphere"
	batch "Aerostat/internal/calc/premium/batch"
	importer "Aerostat/internal/calc/premium/importer"
	recommend "Aerostat/internal/calc/premium/recommend"
	report "Aerostat/internal/calc/report"
	history "Aerostat/internal/history"
	repo "Aerostat/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	atmosphereH := &atmosphere.Handler{}
	airshipH := &airship.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	historyH := &history.Handler{Repo: userRepo}

	secureApi.HandleFunc("/tools/atmosphere/calc", atmosphereH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/airship/calc", historyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/airship/compare", airshipH.Compare).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")

	secureApi.HandleFunc("/tools-premium/airship/batch", batchH.Airship).Methods("POST")
	secureApi.HandleFunc("/tools-premium/airship/import", importerH.Airship).Methods("POST")
	secureApi.HandleFunc("/tools-premium/airship/recommend", recommendH.Option).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
