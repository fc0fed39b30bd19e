package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}

type StaffResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Role        int    `json:"role"`
	Status      int    `json:"status"`
}

type CreateStaffRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Role        int    `json:"role" validate:"min=1,max=3"`
}

type UpdateStaffRequest struct {
	ID          uint   `json:"id" validate:"required"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar"`
	Role        int    `json:"role"`
}
