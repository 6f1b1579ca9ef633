package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocerylist/internal/appconfig"
	"grocerylist/internal/db"
	"grocerylist/internal/export"
	"grocerylist/internal/grocery"
	"grocerylist/internal/ingredient"
	"grocerylist/internal/recipe"
	"grocerylist/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[EXPORT] no .env file found, using environment variables")
	}

	required := []string{
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("[EXPORT] missing env var: %s", k)
		}
	}

	interval := 2 * time.Second
	if raw := os.Getenv("EXPORT_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Fatalf("[EXPORT] invalid EXPORT_INTERVAL %q", raw)
		}
		interval = d
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	r2Client, err := storage.NewR2Client(ctx, storage.R2ConfigFromEnv())
	if err != nil {
		log.Fatalf("[EXPORT] R2 init failed: %v", err)
	}

	configService := appconfig.NewService(appconfig.NewPostgresRepository(pgDB))
	unknownZoneLabel, err := configService.UnknownZoneLabel(ctx, os.Getenv("UNKNOWN_ZONE_LABEL"))
	if err != nil {
		log.Printf("[EXPORT] could not read %s, using %q: %v", appconfig.KeyUnknownZoneLabel, unknownZoneLabel, err)
	}

	ingredientService := ingredient.NewService(ingredient.NewPostgresRepository(pgDB))
	recipeService := recipe.NewService(recipe.NewPostgresRepository(pgDB), ingredientService)
	groceryService := grocery.NewService(
		grocery.NewPostgresRepository(pgDB),
		recipeService,
		ingredientService,
		unknownZoneLabel,
	)

	worker := export.NewWorker(export.NewPostgresRepository(pgDB), groceryService, r2Client)

	log.Printf("[EXPORT] worker running, polling every %s", interval)
	worker.Run(ctx, interval)
}
