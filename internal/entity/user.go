package entity

type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleAgent   UserRole = "agent"
)

// UserLoginData is what the token middleware extracts from a verified access
// token. Tokens are issued by the account service.
type UserLoginData struct {
	ID    string
	Email string
	Role  UserRole
}
