package models

import "time"

// Video is a catalog record as returned by list-style operations.
// Duration is in clock format ("27:35") on returned records; the backing
// database stores ISO-8601 periods ("PT27M35S").
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Thumbnail     string    `json:"thumbnail"`
	ChannelID     string    `json:"channel_id"`
	ChannelTitle  string    `json:"channel_title"`
	ChannelAvatar string    `json:"channel_avatar"`
	Views         int64     `json:"views"`
	LikeCount     int64     `json:"like_count"`
	PublishedAt   time.Time `json:"published_at"`
	Duration      string    `json:"duration"`
	Category      string    `json:"category"`
	VideoURL      string    `json:"video_url"`
}

// VideoDetails is the full detail-page payload for a single video.
type VideoDetails struct {
	Video

	CommentCount    int64 `json:"comment_count"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// FallbackVideo is the fixed substitute content shown when a requested
// video cannot be found.
type FallbackVideo struct {
	URL          string `json:"url"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
}
