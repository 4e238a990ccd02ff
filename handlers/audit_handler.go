package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/response"
	"github.com/navacharity/charity-go/services"
)

// GET /audit/logs
func GetAuditLogs(c *gin.Context) {
	logs, err := services.ListAuditLogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
