package admin

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
