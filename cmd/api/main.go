package main

import (
	"context"
	"log"
	"os"
	"strings"

	"grocerylist/internal/appconfig"
	"grocerylist/internal/auth"
	"grocerylist/internal/db"
	"grocerylist/internal/export"
	"grocerylist/internal/grocery"
	"grocerylist/internal/ingredient"
	"grocerylist/internal/recipe"
	"grocerylist/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("[API] missing env var: %s", k)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── SERVICES ─────────────────────────
	configService := appconfig.NewService(appconfig.NewPostgresRepository(pgDB))

	unknownZoneLabel, err := configService.UnknownZoneLabel(context.Background(), os.Getenv("UNKNOWN_ZONE_LABEL"))
	if err != nil {
		log.Printf("[API] could not read %s, using %q: %v", appconfig.KeyUnknownZoneLabel, unknownZoneLabel, err)
	}

	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))
	ingredientService := ingredient.NewService(ingredient.NewPostgresRepository(pgDB))
	recipeService := recipe.NewService(recipe.NewPostgresRepository(pgDB), ingredientService)
	groceryService := grocery.NewService(
		grocery.NewPostgresRepository(pgDB),
		recipeService,
		ingredientService,
		unknownZoneLabel,
	)
	exportService := export.NewService(export.NewPostgresRepository(pgDB))

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Auth:         auth.NewHandler(authService),
		Ingredient:   ingredient.NewHandler(ingredientService),
		Recipe:       recipe.NewHandler(recipeService),
		Grocery:      grocery.NewHandler(groceryService),
		Export:       export.NewHandler(exportService),
		Config:       appconfig.NewHandler(configService),
		AllowOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("[API] running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[API] server stopped: %v", err)
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
