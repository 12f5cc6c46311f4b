package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/database"
	"github.com/kybermartin/python-editor/internal/services"
)

// -- Inputs --
type SaveScriptInput struct {
	Title    *string `json:"title" binding:"required"`
	Code     *string `json:"code" binding:"required"`
	UserName *string `json:"user_name" binding:"required"`
}

// -- Outputs --
type ScriptResponse struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

// SaveScript handles POST /save. The owning user is created lazily on
// first save under a new name.
func SaveScript(c *gin.Context) {
	var input SaveScriptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.Session(c.Request.Context())
	if err := services.SaveScript(db, *input.Title, *input.Code, *input.UserName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save script"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skript uložený"})
}

// ListScripts handles GET /scripts/:username. An unknown user is not an
// error; the response is an empty array.
func ListScripts(c *gin.Context) {
	username := c.Param("username")

	db := database.Session(c.Request.Context())
	scripts, err := services.ListScripts(db, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scripts"})
		return
	}

	out := make([]ScriptResponse, 0, len(scripts))
	for _, s := range scripts {
		out = append(out, ScriptResponse{Title: s.Title, Code: s.Code})
	}

	c.JSON(http.StatusOK, out)
}
