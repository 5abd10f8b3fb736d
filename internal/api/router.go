package api

import "github.com/gin-gonic/gin"

// NewRouter wires the loop endpoints. Generation is CPU-bound and
// re-entrant, so no shared state or locking is needed per request.
func NewRouter() *gin.Engine {
	r := gin.Default()

	ctrl := NewLoopController()
	r.GET("/health", ctrl.Health)
	r.POST("/generate", ctrl.Generate)

	return r
}
