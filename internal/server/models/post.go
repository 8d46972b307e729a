package models

import "time"

// Post is an append-only piece of content tagged with a topic.
type Post struct {
	ID        string
	AuthorID  string
	Topic     string
	Content   string
	CreatedAt time.Time
}

// Event is a scheduled gathering created by a user.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	CreatedBy   string
	CreatedAt   time.Time
}

// Session binds an opaque token to the user who logged in with it.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
