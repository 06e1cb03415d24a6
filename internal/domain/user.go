package domain

type UserRole string

const (
	UserRoleAgent UserRole = "AGENT"
	UserRoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	PhoneNumber  string   `json:"phone_number"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}
