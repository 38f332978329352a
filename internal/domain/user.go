package domain

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// Member pairs a user with the role they hold on some project, either
// directly or inherited from an ancestor.
type Member struct {
	User User
	Role Role
}
