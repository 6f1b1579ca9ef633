package router

import (
	"net/http"
	"time"

	"grocerylist/internal/appconfig"
	"grocerylist/internal/auth"
	"grocerylist/internal/export"
	"grocerylist/internal/grocery"
	"grocerylist/internal/ingredient"
	"grocerylist/internal/middleware"
	"grocerylist/internal/recipe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultAllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Deps are the handlers mounted by NewRouter.
type Deps struct {
	Auth       *auth.Handler
	Ingredient *ingredient.Handler
	Recipe     *recipe.Handler
	Grocery    *grocery.Handler
	Export     *export.Handler
	Config     *appconfig.Handler

	AllowOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	origins := d.AllowOrigins
	if len(origins) == 0 {
		origins = DefaultAllowOrigins
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/config", d.Config.List)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), d.Auth.Me)
	}

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())

	// ───────────────────────── CATALOG ─────────────────────────
	protected.GET("/zones", d.Ingredient.ListZones)
	protected.POST("/zones", middleware.RequireRole(auth.RoleAdmin), d.Ingredient.CreateZone)
	protected.GET("/ingredients", d.Ingredient.ListIngredients)
	protected.POST("/ingredients", d.Ingredient.CreateIngredient)

	// ───────────────────────── RECIPES ─────────────────────────
	recipes := protected.Group("/recipes")
	{
		recipes.GET("", d.Recipe.Load)
		recipes.POST("", d.Recipe.Create)
		recipes.GET("/:id", d.Recipe.Get)
	}

	// ───────────────────────── GROCERY ─────────────────────────
	groceryGroup := protected.Group("/grocery")
	{
		groceryGroup.GET("", d.Grocery.Load)
		groceryGroup.DELETE("", d.Grocery.Clear)
		groceryGroup.POST("/recipes", d.Grocery.AddRecipes)
		groceryGroup.DELETE("/recipes/:line_id", d.Grocery.RemoveLine)
		groceryGroup.GET("/buying", d.Grocery.BuyingList)
		groceryGroup.PUT("/buying/:ingredient_id", d.Grocery.SetChecked)

		groceryGroup.POST("/exports", d.Export.Request)
		groceryGroup.GET("/exports/:id", d.Export.Get)
	}

	return r
}
