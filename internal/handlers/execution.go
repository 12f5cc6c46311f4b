package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/services"
	apperrors "github.com/kybermartin/python-editor/pkg/errors"
)

// Pointer so a present-but-empty body is accepted while a missing field
// still fails binding.
type RunRequest struct {
	Code *string `json:"code" binding:"required"`
}

// RunCode handles POST /run. The Judge0 result body is relayed verbatim.
func RunCode(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.ExecuteCode(*req.Code)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Execution failed: " + err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}
