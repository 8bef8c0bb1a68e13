package api

// Request DTOs

type RegisterRequest struct {
	Id       string `json:"id" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
}

type LoginRequest struct {
	Id       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// SuccessResponse is the bare acknowledgement for mutations with nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
