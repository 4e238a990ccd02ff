package dto

import "time"

type CreateTaskInput struct {
	Title        string     `json:"title" form:"title" binding:"required,max=60" example:"Deliver food packages"`
	Description  *string    `json:"description" form:"description"`
	Date         *time.Time `json:"date" form:"date" time_format:"2006-01-02"`
	AgeLimitFrom *int       `json:"age_limit_from" form:"age_limit_from" binding:"omitempty,min=0"`
	AgeLimitTo   *int       `json:"age_limit_to" form:"age_limit_to" binding:"omitempty,min=0"`
	GenderLimit  *string    `json:"gender_limit" form:"gender_limit" binding:"omitempty,oneof=M F"`
}

type TaskResponseInput struct {
	Response string `json:"response" form:"response" binding:"required" example:"A"`
}
