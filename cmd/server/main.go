package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"eventquote/internal/api"
	"eventquote/internal/auth"
	"eventquote/internal/repository"
	"eventquote/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	policiesPath := os.Getenv("POLICIES_PATH")
	if policiesPath == "" {
		policiesPath = "policies.yaml"
	}
	policy, err := service.LoadPolicyConfig(policiesPath)
	if err != nil {
		log.Fatalf("Failed to load policy config: %v", err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	catalogSvc := service.NewCatalogService(catalogRepo)
	if err := catalogSvc.Refresh(); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	quoteSvc := service.NewQuoteService(catalogSvc, *policy)
	senderSvc := service.NewSenderService()
	adminAuthSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository(db))

	quoteHandler := api.NewQuoteHandler(quoteSvc, catalogSvc, senderSvc)
	adminHandler := api.NewAdminHandler(catalogSvc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	jobSvc := service.NewJobService(catalogSvc)
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.RefreshCatalogSnapshot(); err != nil {
			log.Printf("Scheduled catalog refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule catalog refresh: %v", err)
	}
	c.Start()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/quote", quoteHandler.CreateQuote).Methods("POST")
	r.HandleFunc("/api/quote/send", quoteHandler.SendQuote).Methods("POST")
	r.HandleFunc("/api/catalog", quoteHandler.GetCatalog).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	r.HandleFunc("/admin/register", adminAuthHandler.CreateUserAdmin).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/food-packages/{id}", adminHandler.UpdateFoodPackage).Methods("PUT")
	admin.HandleFunc("/beverage-tiers/{id}", adminHandler.UpdateBeverageTier).Methods("PUT")
	admin.HandleFunc("/catalog/refresh", adminHandler.RefreshCatalog).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(r)))
}
