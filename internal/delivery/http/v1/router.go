package v1

import (
	"html/template"
	"io/fs"
	"net/http"

	"portfolio-site/config"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	SiteUC    domain.SiteUsecase
	HealthUC  usecase.HealthUsecase
	Templates *template.Template
	Static    fs.FS
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.MediaHosts))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())

	if deps.Templates != nil {
		r.SetHTMLTemplate(deps.Templates)
	}
	if deps.Static != nil {
		r.StaticFS("/static", http.FS(deps.Static))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		c.JSON(http.StatusOK, status)
	})

	NewContactHandler(api, deps.ContactUC)
	NewSiteHandler(r, api, deps.SiteUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not found"))
	})

	return r
}
