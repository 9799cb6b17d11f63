package store

import (
	"time"

	"github.com/tubedeck/tubedeck/internal/models"
)

// Fallback video constants. The fallback record is a deliberate policy for
// unknown video lookups, not an error path.
const (
	FallbackVideoID    = "dQw4w9WgXcQ"
	FallbackVideoURL   = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	FallbackVideoTitle = "Content Not Available - Enjoy this classic!"
	FallbackChannel    = "Fallback Channel"
)

// DefaultNotificationTTL applies when a notification carries no duration.
const DefaultNotificationTTL = 5 * time.Second

// MaxRecentSearches caps the recent-search list.
const MaxRecentSearches = 10

// SidebarState holds sidebar visibility and geometry. Toggling visibility
// never discards the width.
type SidebarState struct {
	IsOpen bool `json:"isOpen"`
	Width  int  `json:"width"`
}

// SearchState holds search-entry state.
type SearchState struct {
	// RecentSearches is most-recent-first, deduplicated, at most
	// MaxRecentSearches entries.
	RecentSearches []string `json:"recentSearches"`
}

// PlaybackState holds the player session. Volume, Quality, PlaybackSpeed
// and Autoplay are durable preferences; the rest is ephemeral.
type PlaybackState struct {
	CurrentVideoID      string               `json:"currentVideoId"`
	CurrentVideoDetails *models.VideoDetails `json:"currentVideoDetails"`
	Volume              float64              `json:"volume"`
	Quality             string               `json:"quality"`
	PlaybackSpeed       float64              `json:"playbackSpeed"`
	Autoplay            bool                 `json:"autoplay"`
	IsPlaying           bool                 `json:"isPlaying"`
	Progress            float64              `json:"progress"`
	Duration            float64              `json:"duration"`
}

// FilterState holds the feed/search filters.
type FilterState struct {
	SelectedCategory string   `json:"selectedCategory"`
	SortBy           string   `json:"sortBy"`
	UploadDate       string   `json:"uploadDate"`
	Duration         string   `json:"duration"`
	Features         []string `json:"features"`
}

// Notification is a transient user-facing message.
type Notification struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}

// UIState holds transient view flags.
type UIState struct {
	IsMobileMenuOpen   bool           `json:"isMobileMenuOpen"`
	IsSearchBarFocused bool           `json:"isSearchBarFocused"`
	ActiveModals       []string       `json:"activeModals"`
	Notifications      []Notification `json:"notifications"`
}

// ErrorState holds global and per-component error messages.
type ErrorState struct {
	GlobalError     string            `json:"globalError"`
	ComponentErrors map[string]string `json:"componentErrors"`
}

// ConfigState holds runtime-adjustable app configuration.
type ConfigState struct {
	FallbackVideo models.FallbackVideo `json:"fallbackVideo"`
}

// AppState is the single aggregate of cross-screen application state.
// It is created once with defaults and mutated only via dispatched actions.
type AppState struct {
	User     *models.User    `json:"user"`
	Theme    string          `json:"theme"`
	Sidebar  SidebarState    `json:"sidebar"`
	Search   SearchState     `json:"search"`
	Playback PlaybackState   `json:"playback"`
	Filters  FilterState     `json:"filters"`
	UI       UIState         `json:"ui"`
	Loading  map[string]bool `json:"loading"`
	Error    ErrorState      `json:"error"`
	Config   ConfigState     `json:"config"`
}

// DefaultState returns the fixed initial state.
func DefaultState() AppState {
	return AppState{
		User:  nil,
		Theme: "light",
		Sidebar: SidebarState{
			IsOpen: true,
			Width:  240,
		},
		Search: SearchState{
			RecentSearches: []string{},
		},
		Playback: PlaybackState{
			Volume:        1,
			Quality:       "auto",
			PlaybackSpeed: 1,
			Autoplay:      true,
		},
		Filters: FilterState{
			SelectedCategory: "all",
			SortBy:           "relevance",
			UploadDate:       "any",
			Duration:         "any",
			Features:         []string{},
		},
		UI: UIState{
			ActiveModals:  []string{},
			Notifications: []Notification{},
		},
		Loading: map[string]bool{
			"feed":          false,
			"videoDetail":   false,
			"searchResults": false,
			"comments":      false,
			"suggestions":   false,
		},
		Error: ErrorState{
			ComponentErrors: map[string]string{},
		},
		Config: ConfigState{
			FallbackVideo: models.FallbackVideo{
				URL:          FallbackVideoURL,
				ID:           FallbackVideoID,
				Title:        FallbackVideoTitle,
				ChannelTitle: FallbackChannel,
			},
		},
	}
}

// clone returns a deep copy so callers never alias store-internal state.
func (s AppState) clone() AppState {
	out := s

	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.Playback.CurrentVideoDetails != nil {
		details := *s.Playback.CurrentVideoDetails
		out.Playback.CurrentVideoDetails = &details
	}

	out.Search.RecentSearches = append([]string(nil), s.Search.RecentSearches...)
	out.Filters.Features = append([]string(nil), s.Filters.Features...)
	out.UI.ActiveModals = append([]string(nil), s.UI.ActiveModals...)
	out.UI.Notifications = append([]Notification(nil), s.UI.Notifications...)

	out.Loading = make(map[string]bool, len(s.Loading))
	for k, v := range s.Loading {
		out.Loading[k] = v
	}
	out.Error.ComponentErrors = make(map[string]string, len(s.Error.ComponentErrors))
	for k, v := range s.Error.ComponentErrors {
		out.Error.ComponentErrors[k] = v
	}

	return out
}
