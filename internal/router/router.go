package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"workhub/docs"
	"workhub/internal/auth"
	"workhub/internal/cache"
	"workhub/internal/config"
	"workhub/internal/errors"
	"workhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	cacheClient *cache.Client,
	workoutHandler *handler.WorkoutHandler,
	jobHandler *handler.JobHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// All failures, including unmatched routes, flow through one formatter.
	e.HTTPErrorHandler = errors.HTTPErrorHandler

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		if err := cacheClient.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusOK, "ok (cache degraded)")
		}
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public workout routes
	api.GET("/workouts", workoutHandler.ListWorkouts)
	api.GET("/workouts/:id", workoutHandler.GetWorkout)
	api.POST("/workouts", workoutHandler.CreateWorkout)
	api.PATCH("/workouts/:id", workoutHandler.UpdateWorkout)
	api.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)

	// Public auth routes
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/refresh", authHandler.Refresh)
	api.POST("/users/logout", authHandler.Logout)
	api.GET("/seed/workouts", seedHandler.SeedWorkouts)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.RequireAuth(jwtService, tokenStore))

	secured.GET("/users/me", userHandler.Me)
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)

	secured.GET("/jobs", jobHandler.ListJobs)
	secured.GET("/jobs/:id", jobHandler.GetJob)
	secured.POST("/jobs", jobHandler.CreateJob)
	secured.PATCH("/jobs/:id", jobHandler.UpdateJob)
	secured.DELETE("/jobs/:id", jobHandler.DeleteJob)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
