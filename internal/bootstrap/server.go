package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drizz21/rental-tes/api"
	"github.com/drizz21/rental-tes/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers bundles everything the HTTP surface mounts.
type Handlers struct {
	Vehicles   *api.VehicleHandler
	Bookings   *api.BookingHandler
	Gallery    *api.GalleryHandler
	Reports    *api.ReportHandler
	Admin      *api.AdminHandler
	Statistics *api.StatisticsHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter builds the full route table. Routes are declared explicitly, one
// group per collection; anything unmatched falls through to the uniform 404.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Rino Rental Sorong API"})
	})

	h.Vehicles.Register(router.Group("/kendaraan"))
	h.Bookings.Register(router.Group("/booking"))
	h.Gallery.Register(router.Group("/gallery"))
	h.Reports.Register(router.Group("/laporan-keuangan"))
	h.Admin.Register(router.Group("/admin"))
	h.Statistics.Register(router.Group("/statistics"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/backoffice.swagger.json"),
		)))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Route %s not found", c.Request.URL.Path)})
	})

	return router
}

// corsMiddleware mirrors the permissive header set the public site expects.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
