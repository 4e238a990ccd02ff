package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/dto"
	"github.com/navacharity/charity-go/response"
	"github.com/navacharity/charity-go/services"
	"github.com/navacharity/charity-go/utils"
)

// POST /benefactors
//
// Validation and duplicate-role failures answer 404, matching the historical
// behavior of this API.
func RegisterBenefactor(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateBenefactorInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	benefactor, err := services.RegisterBenefactor(c, uid, input)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, benefactor)
}

// POST /charities
func RegisterCharity(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateCharityInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	charity, err := services.RegisterCharity(c, uid, input)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, charity)
}
