// Package models defines the server-side domain entities shared by the
// repositories, services and transport layers.
package models

import "time"

// User is a registered member of the network. PasswordHash holds the
// salt$digest credential and must never leave the server.
type User struct {
	ID           string
	Name         string
	UserName     string
	Email        string
	Role         string
	PasswordHash string
	Interests    []string
	JoinedAt     time.Time
}

// Public returns a copy of u with the credential cleared.
func (u *User) Public() *User {
	c := *u
	c.PasswordHash = ""
	c.Interests = append([]string(nil), u.Interests...)
	return &c
}
