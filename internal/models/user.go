package models

// User is a signed-in shop operator. Any authenticated user has full
// read/write access to all orders.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	DisplayName  string `json:"displayName"`
	PasswordHash string `json:"-"`
}
