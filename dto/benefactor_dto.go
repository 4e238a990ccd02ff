package dto

type CreateBenefactorInput struct {
	Experience      *int16 `json:"experience" form:"experience" binding:"omitempty,oneof=0 1 2" example:"1"`
	FreeTimePerWeek *int   `json:"free_time_per_week" form:"free_time_per_week" binding:"omitempty,min=0" example:"5"`
}
