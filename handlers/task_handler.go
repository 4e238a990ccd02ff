package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/dto"
	"github.com/navacharity/charity-go/response"
	"github.com/navacharity/charity-go/services"
	"github.com/navacharity/charity-go/utils"
)

func taskIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid task id"})
		return 0, false
	}
	return uint(id64), true
}

// GET /tasks
func GetTasks(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	params := map[string]string{}
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	tasks, err := services.ListTasks(uid, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// POST /tasks
func CreateTask(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateTaskInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	task, err := services.CreateTask(c, uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GET /tasks/:id/request
//
// Precondition failures answer 404, matching the historical behavior of
// this API.
func RequestTask(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := services.RequestTask(c, uid, taskID); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: "task not found"})
		case errors.Is(err, services.ErrTaskNotPending):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.DetailResponse{Detail: "Request sent."})
}

// POST /tasks/:id/response
func RespondToTask(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var input dto.TaskResponseInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := services.RespondToTask(c, uid, taskID, input.Response); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: "task not found"})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidResponse):
			c.JSON(http.StatusBadRequest, response.DetailResponse{Detail: err.Error()})
		case errors.Is(err, services.ErrTaskNotWaiting):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.DetailResponse{Detail: "Response sent."})
}

// POST /tasks/:id/done
func CompleteTask(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := services.CompleteTask(c, uid, taskID); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: "task not found"})
		case errors.Is(err, services.ErrNotTaskOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrTaskNotAssigned):
			c.JSON(http.StatusNotFound, response.DetailResponse{Detail: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.DetailResponse{Detail: "Task has been done successfully."})
}
