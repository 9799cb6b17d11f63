package models

// User is the signed-in profile, or nil when browsing anonymously.
type User struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}
