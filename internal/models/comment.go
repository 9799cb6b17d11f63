package models

import "time"

// Author identifies who wrote a comment.
type Author struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified"`
}

// Comment is a single comment on a video. Comments are created by the
// service on submission and never updated or deleted afterwards.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
	Timestamp time.Time `json:"timestamp"`
}
