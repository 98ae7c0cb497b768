package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the signed-in identity. Email is the external lookup key and is
// stored lowercased; Role is derived from the email once, at login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	JoinDate string `json:"joinDate,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
