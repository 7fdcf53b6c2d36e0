package request_models

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
