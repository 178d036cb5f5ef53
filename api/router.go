// Package api contains all endpoints available
package api

import (
	"time"

	"budgetbuddy/finance-api/config"
	"budgetbuddy/finance-api/middleware"
	"budgetbuddy/finance-api/security"
	"budgetbuddy/finance-api/service"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Tokens   *security.TokenService
	Dispatch *service.Dispatcher
}

func NewRouter(db *gorm.DB, tokens *security.TokenService, dispatch *service.Dispatcher, host config.HostConfig) (*API, error) {
	a := &API{
		DB:       db,
		Argon:    security.NewArgon(),
		Tokens:   tokens,
		Dispatch: dispatch,
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     host.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	auth := middleware.NewAuthMiddleware(db, tokens)

	// HEAD /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	users := router.Group("/users")
	{
		// POST /users/signup		-> Registers a new user and dispatches an SMS code
		users.POST("/signup", a.UserSignup)

		// POST /users/verify		-> Verifies the SMS code and returns a session token
		users.POST("/verify", a.UserVerify)

		// POST /users/login		-> Logs in a verified user and returns a session token
		users.POST("/login", a.UserLogin)
	}

	// GET /expense			-> Returns a filtered, paged expense listing
	router.GET("/expense", auth, a.ExpenseList)

	// POST /expense		-> Creates an expense, upserting category/payment mode
	router.POST("/expense", auth, a.ExpenseCreate)

	// PATCH /expense/:id		-> Partially updates an owned expense
	router.PATCH("/expense/:id", auth, a.ExpenseUpdate)

	// DELETE /expense/:id		-> Deletes an owned expense
	router.DELETE("/expense/:id", auth, a.ExpenseDelete)

	// GET /getCSV			-> Downloads the full expense listing as CSV
	router.GET("/getCSV", auth, a.ExpenseCSV)

	incomes := router.Group("/income", auth)
	{
		// GET /income			-> Returns a filtered income listing
		incomes.GET("", a.IncomeList)

		// POST /income			-> Creates an income
		incomes.POST("", a.IncomeCreate)

		// GET /income/:id		-> Returns a single owned income
		incomes.GET("/:id", a.IncomeFetch)

		// PATCH /income/:id		-> Partially updates an owned income
		incomes.PATCH("/:id", a.IncomeUpdate)

		// DELETE /income/:id		-> Deletes an owned income
		incomes.DELETE("/:id", a.IncomeDelete)
	}

	// GET /categories		-> Returns all categories
	router.GET("/categories", auth, a.CategoryList)

	// GET /category_expense	-> Returns per-category expense totals
	router.GET("/category_expense", auth, a.CategoryExpenseReport)

	// GET /category_budget		-> Returns all categories with their budgets
	router.GET("/category_budget", auth, a.CategoryBudgets)

	// GET /testimonials		-> Returns static testimonials
	router.GET("/testimonials", auth, cacheFor(60), a.TestimonialList)

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
