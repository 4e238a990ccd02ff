package dto

type CreateUserInput struct {
	Username    string  `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password    string  `json:"password" form:"password" binding:"required" example:"password123"`
	Phone       *string `json:"phone" form:"phone" example:"09121234567"`
	Address     *string `json:"address" form:"address" example:"1 Main St"`
	Gender      *string `json:"gender" form:"gender" binding:"omitempty,oneof=M F" example:"M"`
	Age         *int    `json:"age" form:"age" binding:"omitempty,min=0" example:"30"`
	Description *string `json:"description" form:"description"`
	FirstName   *string `json:"first_name" form:"first_name" example:"John"`
	LastName    *string `json:"last_name" form:"last_name" example:"Doe"`
	Email       *string `json:"email" form:"email" binding:"omitempty,email" example:"user@example.com"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
