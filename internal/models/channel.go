package models

import "time"

// Channel describes a content channel.
type Channel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Avatar          string    `json:"avatar"`
	Banner          string    `json:"banner"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int       `json:"video_count"`
	JoinDate        time.Time `json:"join_date"`
	Verified        bool      `json:"verified"`
	Country         string    `json:"country"`
}
