package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/sig-gov/sig-backend/internal/api/http"
	"github.com/sig-gov/sig-backend/internal/api/http/middleware"
	"github.com/sig-gov/sig-backend/internal/api/http/routes"
	sighttp "github.com/sig-gov/sig-backend/internal/sig/http"
	"github.com/sig-gov/sig-backend/internal/sig/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Pipeline    *service.Pipeline
	Handle      *service.Handle
	Sink        sighttp.SnapshotSink
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	probe := func() string {
		if snap := dep.Handle.Current(); snap != nil {
			return snap.ID
		}
		return ""
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, probe)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Pipeline: dep.Pipeline,
		Handle:   dep.Handle,
		Sink:     dep.Sink,
	})

	return r
}
