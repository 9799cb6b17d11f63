package store

import "github.com/tubedeck/tubedeck/internal/models"

// Action is a named, immutable request to transition the store from one
// state to the next. The set of actions is closed; anything outside it
// leaves state unchanged.
type Action interface {
	isAction()
}

// SetUser replaces the signed-in profile (nil signs out).
type SetUser struct {
	User *models.User
}

// SetTheme switches between "light" and "dark".
type SetTheme struct {
	Theme string
}

// ToggleSidebar flips sidebar visibility, preserving width.
type ToggleSidebar struct{}

// SetSidebarOpen sets sidebar visibility explicitly.
type SetSidebarOpen struct {
	IsOpen bool
}

// SetSidebarWidth sets the sidebar width in pixels.
type SetSidebarWidth struct {
	Width int
}

// AddRecentSearch records a search term most-recent-first, deduplicated,
// capped at MaxRecentSearches.
type AddRecentSearch struct {
	Term string
}

// ClearSearchHistory empties the recent-search list.
type ClearSearchHistory struct{}

// SetCurrentVideoID switches the active video and clears stale details.
type SetCurrentVideoID struct {
	VideoID string
}

// SetCurrentVideoDetails attaches the loaded detail payload.
type SetCurrentVideoDetails struct {
	Details *models.VideoDetails
}

// UpdatePlaybackSettings merges durable playback preferences. Nil fields
// are left unchanged.
type UpdatePlaybackSettings struct {
	Volume        *float64
	Quality       *string
	PlaybackSpeed *float64
	Autoplay      *bool
}

// SetPlayerState merges ephemeral player state. Nil fields are left
// unchanged.
type SetPlayerState struct {
	IsPlaying *bool
	Progress  *float64
	Duration  *float64
}

// UpdateFilters merges feed/search filters. Nil fields are left unchanged.
type UpdateFilters struct {
	SelectedCategory *string
	SortBy           *string
	UploadDate       *string
	Duration         *string
	Features         *[]string
}

// ToggleMobileMenu flips the mobile menu flag.
type ToggleMobileMenu struct{}

// SetSearchBarFocus sets the search-bar focus flag.
type SetSearchBarFocus struct {
	Focused bool
}

// PushNotification appends a notification. The ID must be unique; use
// Store.PushNotification to get id assignment and auto-expiry.
type PushNotification struct {
	Notification Notification
}

// RemoveNotification removes a notification by id. Removing an absent id
// is a no-op.
type RemoveNotification struct {
	ID string
}

// ToggleModal opens or closes a modal by id.
type ToggleModal struct {
	ModalID string
	Open    bool
}

// SetLoading sets a per-feature loading flag.
type SetLoading struct {
	Key   string
	Value bool
}

// SetGlobalError sets the global error message.
type SetGlobalError struct {
	Message string
}

// ClearGlobalError clears the global error message.
type ClearGlobalError struct{}

// SetComponentError sets an error message for one component.
type SetComponentError struct {
	Key     string
	Message string
}

// ClearComponentError removes the error entry for one component.
type ClearComponentError struct {
	Key string
}

// UpdateFallbackVideo merges the fallback-video configuration. Empty
// fields are left unchanged.
type UpdateFallbackVideo struct {
	URL          string
	ID           string
	Title        string
	ChannelTitle string
}

func (SetUser) isAction()                {}
func (SetTheme) isAction()               {}
func (ToggleSidebar) isAction()          {}
func (SetSidebarOpen) isAction()         {}
func (SetSidebarWidth) isAction()        {}
func (AddRecentSearch) isAction()        {}
func (ClearSearchHistory) isAction()     {}
func (SetCurrentVideoID) isAction()      {}
func (SetCurrentVideoDetails) isAction() {}
func (UpdatePlaybackSettings) isAction() {}
func (SetPlayerState) isAction()         {}
func (UpdateFilters) isAction()          {}
func (ToggleMobileMenu) isAction()       {}
func (SetSearchBarFocus) isAction()      {}
func (PushNotification) isAction()       {}
func (RemoveNotification) isAction()     {}
func (ToggleModal) isAction()            {}
func (SetLoading) isAction()             {}
func (SetGlobalError) isAction()         {}
func (ClearGlobalError) isAction()       {}
func (SetComponentError) isAction()      {}
func (ClearComponentError) isAction()    {}
func (UpdateFallbackVideo) isAction()    {}
