// Package app assembles the HTTP surface from explicitly constructed
// collaborators.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"companyprofile/internal/config"
	"companyprofile/internal/domain/admin"
	"companyprofile/internal/domain/auth"
	"companyprofile/internal/domain/logo"
	"companyprofile/internal/domain/testimonial"
	"companyprofile/internal/media"
	"companyprofile/internal/middleware"
	"companyprofile/internal/pkg/jwt"
	"companyprofile/internal/pkg/metrics"
	"companyprofile/internal/pkg/recaptcha"
	"companyprofile/internal/pkg/revocation"
)

type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Media     media.Store
	JWT       *jwt.Service
	Revoked   revocation.List
	Recaptcha recaptcha.Verifier // nil disables the login check
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := admin.Migrate(db); err != nil {
		return err
	}
	if err := logo.Migrate(db, logo.Kinds...); err != nil {
		return err
	}
	return testimonial.Migrate(db, testimonial.Kinds...)
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = d.Config.MaxUploadSize
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.Config.CORSOrigins),
	)

	api := r.Group("/api")
	api.GET("/healthz", healthz(d.DB))
	if d.Gatherer != nil {
		api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(d.JWT, d.Revoked))

	adminRepo := admin.NewRepository(d.DB)
	admin.NewHandler(admin.NewService(adminRepo)).RegisterRoutes(protected)

	authService := auth.NewService(adminRepo, d.JWT, d.Revoked, d.Recaptcha)
	auth.NewHandler(authService).RegisterRoutes(api, protected)

	for _, kind := range logo.Kinds {
		h := logo.NewHandler(kind, logo.NewRepository(d.DB, kind.Table), d.Media, d.Metrics, d.Config.MaxUploadSize)
		h.RegisterRoutes(api, protected)
	}
	for _, kind := range testimonial.Kinds {
		h := testimonial.NewHandler(kind, testimonial.NewRepository(d.DB, kind.Table), d.Media, d.Metrics, d.Config.MaxUploadSize)
		h.RegisterRoutes(api, protected)
	}

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
