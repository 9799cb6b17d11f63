package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tubedeck/tubedeck/internal/events"
)

// Listener receives a state snapshot after every dispatch that reached the
// reducer. Listeners run synchronously on the dispatching goroutine and
// must not dispatch further actions.
type Listener func(AppState)

// Store is the single source of truth for cross-screen application state.
// All mutation goes through Dispatch; actions are processed strictly in
// dispatch order.
type Store struct {
	mu        sync.Mutex
	state     AppState
	listeners map[int]Listener
	nextID    int
	logger    *events.Logger
}

// New creates a store seeded with the default state.
func New(logger *events.Logger) *Store {
	return &Store{
		state:     DefaultState(),
		listeners: make(map[int]Listener),
		logger:    logger.WithField("component", "store"),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers a listener and returns a cancel function.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Dispatch applies an action to the state and notifies listeners with the
// resulting snapshot. Unknown actions leave state unchanged and notify
// nobody. Dispatch never panics on any member of the action set.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := reduce(s.state, action)
	if !changed {
		return
	}
	s.state = next

	snapshot := s.state.clone()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}

// PushNotification assigns a unique id to the notification, dispatches it,
// and schedules its removal after the notification's duration (default
// DefaultNotificationTTL). The returned id allows early manual removal;
// the timer firing afterwards is a harmless no-op.
func (s *Store) PushNotification(message string, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultNotificationTTL
	}

	note := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Duration: duration,
	}
	s.Dispatch(PushNotification{Notification: note})

	time.AfterFunc(duration, func() {
		s.Dispatch(RemoveNotification{ID: note.ID})
	})

	return note.ID
}

// reduce maps (state, action) to the next state. It reports whether the
// action was recognized; unrecognized actions leave state untouched.
func reduce(state AppState, action Action) (AppState, bool) {
	switch a := action.(type) {
	case SetUser:
		state.User = a.User

	case SetTheme:
		state.Theme = a.Theme

	case ToggleSidebar:
		state.Sidebar.IsOpen = !state.Sidebar.IsOpen

	case SetSidebarOpen:
		state.Sidebar.IsOpen = a.IsOpen

	case SetSidebarWidth:
		if a.Width > 0 {
			state.Sidebar.Width = a.Width
		}

	case AddRecentSearch:
		if a.Term == "" {
			return state, false
		}
		state.Search.RecentSearches = prependSearch(state.Search.RecentSearches, a.Term)

	case ClearSearchHistory:
		state.Search.RecentSearches = []string{}

	case SetCurrentVideoID:
		state.Playback.CurrentVideoID = a.VideoID
		state.Playback.CurrentVideoDetails = nil

	case SetCurrentVideoDetails:
		state.Playback.CurrentVideoDetails = a.Details

	case UpdatePlaybackSettings:
		if a.Volume != nil {
			state.Playback.Volume = *a.Volume
		}
		if a.Quality != nil {
			state.Playback.Quality = *a.Quality
		}
		if a.PlaybackSpeed != nil {
			state.Playback.PlaybackSpeed = *a.PlaybackSpeed
		}
		if a.Autoplay != nil {
			state.Playback.Autoplay = *a.Autoplay
		}

	case SetPlayerState:
		if a.IsPlaying != nil {
			state.Playback.IsPlaying = *a.IsPlaying
		}
		if a.Progress != nil {
			state.Playback.Progress = *a.Progress
		}
		if a.Duration != nil {
			state.Playback.Duration = *a.Duration
		}

	case UpdateFilters:
		if a.SelectedCategory != nil {
			state.Filters.SelectedCategory = *a.SelectedCategory
		}
		if a.SortBy != nil {
			state.Filters.SortBy = *a.SortBy
		}
		if a.UploadDate != nil {
			state.Filters.UploadDate = *a.UploadDate
		}
		if a.Duration != nil {
			state.Filters.Duration = *a.Duration
		}
		if a.Features != nil {
			state.Filters.Features = append([]string(nil), *a.Features...)
		}

	case ToggleMobileMenu:
		state.UI.IsMobileMenuOpen = !state.UI.IsMobileMenuOpen

	case SetSearchBarFocus:
		state.UI.IsSearchBarFocused = a.Focused

	case PushNotification:
		state.UI.Notifications = append(
			append([]Notification(nil), state.UI.Notifications...), a.Notification)

	case RemoveNotification:
		state.UI.Notifications = removeNotification(state.UI.Notifications, a.ID)

	case ToggleModal:
		state.UI.ActiveModals = toggleModal(state.UI.ActiveModals, a.ModalID, a.Open)

	case SetLoading:
		loading := make(map[string]bool, len(state.Loading)+1)
		for k, v := range state.Loading {
			loading[k] = v
		}
		loading[a.Key] = a.Value
		state.Loading = loading

	case SetGlobalError:
		state.Error.GlobalError = a.Message

	case ClearGlobalError:
		state.Error.GlobalError = ""

	case SetComponentError:
		errs := make(map[string]string, len(state.Error.ComponentErrors)+1)
		for k, v := range state.Error.ComponentErrors {
			errs[k] = v
		}
		errs[a.Key] = a.Message
		state.Error.ComponentErrors = errs

	case ClearComponentError:
		errs := make(map[string]string, len(state.Error.ComponentErrors))
		for k, v := range state.Error.ComponentErrors {
			if k != a.Key {
				errs[k] = v
			}
		}
		state.Error.ComponentErrors = errs

	case UpdateFallbackVideo:
		if a.URL != "" {
			state.Config.FallbackVideo.URL = a.URL
		}
		if a.ID != "" {
			state.Config.FallbackVideo.ID = a.ID
		}
		if a.Title != "" {
			state.Config.FallbackVideo.Title = a.Title
		}
		if a.ChannelTitle != "" {
			state.Config.FallbackVideo.ChannelTitle = a.ChannelTitle
		}

	default:
		return state, false
	}

	return state, true
}

// prependSearch puts term at the front, dropping any earlier occurrence
// and truncating to MaxRecentSearches.
func prependSearch(searches []string, term string) []string {
	out := make([]string, 0, len(searches)+1)
	out = append(out, term)
	for _, s := range searches {
		if s != term {
			out = append(out, s)
		}
	}
	if len(out) > MaxRecentSearches {
		out = out[:MaxRecentSearches]
	}
	return out
}

func removeNotification(notes []Notification, id string) []Notification {
	out := make([]Notification, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

func toggleModal(modals []string, id string, open bool) []string {
	out := make([]string, 0, len(modals)+1)
	for _, m := range modals {
		if m != id {
			out = append(out, m)
		}
	}
	if open {
		out = append(out, id)
	}
	return out
}
