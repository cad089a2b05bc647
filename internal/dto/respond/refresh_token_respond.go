package respond

// RefreshTokenRespond 刷新 Access Token 响应
type RefreshTokenRespond struct {
	AccessToken string `json:"accessToken"`
}
