package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/handlers"
)

func RegisterExecutionRoutes(r gin.IRouter) {
	r.POST("/run", handlers.RunCode)
}
