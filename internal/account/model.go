package account

import "time"

// Marketplace roles. A user registers as either a worker (completes
// tasks) or a poster (publishes them); both earn progression.
const (
	RoleWorker = "worker"
	RolePoster = "poster"
)

// User represents a registered marketplace member.
type User struct {
	ID           string
	Handle       string
	Role         string
	PINHash      []byte
	DeviceID     string
	TokenVersion int
	CreatedAt    time.Time
	LastLogin    time.Time
}

// Credentials is the register/login request structure.
type Credentials struct {
	Handle   string
	PIN      string
	Role     string
	DeviceID string
}
