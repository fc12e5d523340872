package routes

import (
	"github.com/gin-gonic/gin"

	sighttp "github.com/sig-gov/sig-backend/internal/sig/http"
	"github.com/sig-gov/sig-backend/internal/sig/service"
)

type V1Deps struct {
	Pipeline *service.Pipeline
	Handle   *service.Handle
	Sink     sighttp.SnapshotSink
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	handler := sighttp.NewHandler(dep.Pipeline, dep.Handle, dep.Sink)
	handler.Register(api)
}
