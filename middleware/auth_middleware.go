package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/repositories"
	"github.com/navacharity/charity-go/response"
	"github.com/navacharity/charity-go/utils"
)

// RequireBenefactor only lets callers with a benefactor record through.
// Ownership of a specific task is checked further down, in the service.
func RequireBenefactor() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := repositories.GetBenefactorByUserID(uid); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Benefactor only"})
			return
		}

		c.Next()
	}
}

// RequireCharityOwner only lets callers with a charity record through.
func RequireCharityOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := repositories.GetCharityByUserID(uid); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Charity owner only"})
			return
		}

		c.Next()
	}
}
