package auth

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
