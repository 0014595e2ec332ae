package bootstrap

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpapi "github.com/powergrid/intelligence-api/internal/api/http"
	"github.com/powergrid/intelligence-api/internal/api/http/middleware"
	compliancehttp "github.com/powergrid/intelligence-api/internal/compliance/http"
)

type RouterDeps struct {
	ServiceName          string
	Logger               *slog.Logger
	Engine               compliancehttp.Answerer
	Gatherer             prometheus.Gatherer
	CORSAllowedOrigins   []string
	MaxBodyBytes         int64
	StrictUpstreamErrors bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(dep.CORSAllowedOrigins))
	r.Use(middleware.RequestID(dep.Logger))

	httpapi.NewHealthHandler(dep.ServiceName).RegisterRoutes(r)
	if dep.Gatherer != nil {
		httpapi.RegisterMetrics(r, dep.Gatherer)
	}

	askHandler := compliancehttp.NewHandler(dep.Engine, compliancehttp.Options{
		StrictUpstreamErrors: dep.StrictUpstreamErrors,
		MaxBodyBytes:         dep.MaxBodyBytes,
	})
	askHandler.Register(r)

	return r
}
