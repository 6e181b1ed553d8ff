package v1

import (
	"log/slog"

	"form-data-backend/config"
	"form-data-backend/internal/delivery/http/middleware"
	"form-data-backend/internal/delivery/http/response"
	"form-data-backend/internal/domain"
	"form-data-backend/pkg/apperror"
	"form-data-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	FormDataUC  domain.FormDataUsecase
	HealthUC    domain.HealthUsecase
	Logger      *slog.Logger
	Events      *security.SecurityLogger
	RateLimiter *middleware.RateLimiter // optional
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	if deps.Config.Debug {
		r.Use(gin.Logger())
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoRoute(func(c *gin.Context) {
		response.AppError(c, apperror.NotFound(notFoundMessage))
	})

	NewSystemHandler(r, deps.HealthUC, deps.Config.APITitle, deps.Config.APIVersion)

	// Swagger
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		NewFormDataHandler(v1, deps.FormDataUC, deps.Events)
	}

	return r
}
