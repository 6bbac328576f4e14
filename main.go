package main

import (
	auth "Ovoid/internal/auth"
	egg "Ovoid/internal/calc/egg"
	autodesign "Ovoid/internal/calc/premium/autodesign"
	batch "Ovoid/internal/calc/premium/batch"
	importer "Ovoid/internal/calc/premium/importer"
	recommend "Ovoid/internal/calc/premium/recommend"
	report "Ovoid/internal/calc/report"
	preset "Ovoid/internal/preset"
	profile "Ovoid/internal/profile"
	repo "Ovoid/internal/repo"
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

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

func HandleList(mux *mux.Router, db *sql.DB, presets *preset.Store) {
	dbRepo := repo.NewPostgresDB(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: dbRepo}
	profileH := &profile.ProfileHandler{Repo: dbRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	eggH := &egg.Handler{}
	presetH := &preset.Handler{Store: presets}

	api.HandleFunc("/tools/egg/preview", eggH.Preview).Methods("POST")
	api.HandleFunc("/tools/egg/volume", eggH.Volume).Methods("POST")
	api.HandleFunc("/tools/egg/mesh", eggH.MeshInfo).Methods("POST")
	api.HandleFunc("/tools/egg/stl", eggH.STL).Methods("POST")
	api.HandleFunc("/presets", presetH.List).Methods("GET")
	api.HandleFunc("/presets/{species}", presetH.Get).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/designs", profileH.SaveDesign).Methods("POST")
	secureApi.HandleFunc("/designs", profileH.ListDesigns).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", profileH.GetDesign).Methods("GET")
	secureApi.HandleFunc("/designs/{id:[0-9]+}", profileH.DeleteDesign).Methods("DELETE")

	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/batch/egg", batchH.Eggs).Methods("POST")
	secureApi.HandleFunc("/tools/import/egg", importerH.Eggs).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/egg", autodesignH.Egg).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/print", recommendH.Print).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment")
	}

	presetsPath := os.Getenv("PRESETS_CSV")
	if presetsPath == "" {
		presetsPath = "data/species.csv"
	}
	presets, err := preset.Load(presetsPath)
	if err != nil {
		log.Fatalf("preset load error: %v", err)
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db, presets)
	handler := CORS(mux)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
