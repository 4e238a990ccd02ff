package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/dto"
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/repositories"
	"github.com/navacharity/charity-go/utils"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskNotPending  = errors.New("This task is not pending.")
	ErrTaskNotWaiting  = errors.New("This task is not waiting.")
	ErrTaskNotAssigned = errors.New("Task is not assigned yet.")
	ErrNotTaskOwner    = errors.New("task does not belong to this charity")
	// Returned when the response code is not one of the accepted values; the
	// message doubles as the hint payload.
	ErrInvalidResponse = errors.New(`Required field ("A" for accepted / "R" for rejected)`)
)

// ListTasks resolves the caller's roles and returns the tasks visible to
// them, narrowed by the allow-listed query parameters.
func ListTasks(uid uint, params map[string]string) ([]models.Task, error) {
	var charityID, benefactorID *uint

	if charity, err := repositories.GetCharityByUserID(uid); err == nil {
		charityID = &charity.CID
	}
	if benefactor, err := repositories.GetBenefactorByUserID(uid); err == nil {
		benefactorID = &benefactor.BID
	}

	return repositories.ListVisibleTasks(charityID, benefactorID, params)
}

// CreateTask creates a pending task owned by the caller's charity. The
// owning charity is forced from the caller; the payload cannot override it.
func CreateTask(c *gin.Context, uid uint, input dto.CreateTaskInput) (models.Task, error) {
	charity, err := repositories.GetCharityByUserID(uid)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Date:         input.Date,
		AgeLimitFrom: input.AgeLimitFrom,
		AgeLimitTo:   input.AgeLimitTo,
		GenderLimit:  input.GenderLimit,
		State:        models.TaskStatePending,
		CharityID:    charity.CID,
	}

	if err := repositories.CreateTask(&task); err != nil {
		return models.Task{}, err
	}
	utils.LogAuditWithConsole(c, uid, "create", "task", fmt.Sprintf("t_id=%d", task.TID), nil, task, "")
	return task, nil
}

// RequestTask lets a benefactor ask for a pending task. A task in any other
// state is left untouched.
func RequestTask(c *gin.Context, uid uint, taskID uint) error {
	benefactor, err := repositories.GetBenefactorByUserID(uid)
	if err != nil {
		return err
	}

	task, err := repositories.GetTaskByID(taskID)
	if err != nil {
		return ErrTaskNotFound
	}

	if task.State != models.TaskStatePending {
		return ErrTaskNotPending
	}

	oldTask := task
	task.AssignToBenefactor(&benefactor)
	if err := repositories.SaveTask(&task); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, uid, "request", "task", fmt.Sprintf("t_id=%d", task.TID), oldTask, task, "")
	return nil
}

// RespondToTask applies the owning charity's accept/reject answer to a
// waiting task. A 'D' code against a non-waiting task gets the dedicated
// hint error instead of the generic not-waiting one.
func RespondToTask(c *gin.Context, uid uint, taskID uint, response string) error {
	charity, err := repositories.GetCharityByUserID(uid)
	if err != nil {
		return err
	}

	task, err := repositories.GetTaskByID(taskID)
	if err != nil {
		return ErrTaskNotFound
	}
	if task.CharityID != charity.CID {
		return ErrNotTaskOwner
	}

	if task.State != models.TaskStateWaiting {
		if response == "D" {
			return ErrInvalidResponse
		}
		return ErrTaskNotWaiting
	}

	if response != models.TaskResponseAccept && response != models.TaskResponseReject {
		return ErrInvalidResponse
	}

	oldTask := task
	task.RespondToBenefactorRequest(response)
	if err := repositories.SaveTask(&task); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, uid, "respond", "task", fmt.Sprintf("t_id=%d", task.TID), oldTask, task, response)
	return nil
}

// CompleteTask marks an assigned task done. Done is terminal; any later
// request, response, or completion attempt falls into the precondition
// errors above.
func CompleteTask(c *gin.Context, uid uint, taskID uint) error {
	charity, err := repositories.GetCharityByUserID(uid)
	if err != nil {
		return err
	}

	task, err := repositories.GetTaskByID(taskID)
	if err != nil {
		return ErrTaskNotFound
	}
	if task.CharityID != charity.CID {
		return ErrNotTaskOwner
	}

	if task.State != models.TaskStateAssigned {
		return ErrTaskNotAssigned
	}

	oldTask := task
	task.Done()
	if err := repositories.SaveTask(&task); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, uid, "done", "task", fmt.Sprintf("t_id=%d", task.TID), oldTask, task, "")
	return nil
}
