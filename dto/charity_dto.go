package dto

type CreateCharityInput struct {
	Name      string `json:"name" form:"name" binding:"required,max=50" example:"Helping Hands"`
	RegNumber string `json:"reg_number" form:"reg_number" binding:"required,max=10" example:"1234567890"`
}
