package model

// UserProfile 身份提供方中的用户资料（本地不落库）
type UserProfile struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Email   string `json:"email,omitempty"`
}
