package domain

import "time"

// User is the customer a reward is paid to. Only existence matters for eligibility.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
