package models

import "time"

// User is the stored account record. PasswordHash never leaves the process.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Message      string
	CreatedAt    time.Time
}

// Profile is the public slice of a user that visitors see on /to/:username.
type Profile struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// AuthedUser is what the authorize collaborator returns on success.
type AuthedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Profile() Profile {
	return Profile{Username: u.Username, Message: u.Message}
}
