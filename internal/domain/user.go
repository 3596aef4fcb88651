package domain

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleOfficer Role = "officer"
)

// User is a portal account created at provisioning time. The username of a
// citizen account doubles as the identity recorded on transfer requests.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
