package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/handlers"
)

func RegisterScriptRoutes(r gin.IRouter) {
	r.POST("/save", handlers.SaveScript)
	r.GET("/scripts/:username", handlers.ListScripts)
}
