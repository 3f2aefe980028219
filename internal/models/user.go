package models

// Role determines what a dashboard account is allowed to see.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// User is a dashboard account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
	HotelID      string `json:"hotelId,omitempty"`
}
