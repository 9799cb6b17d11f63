package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/store"
	"github.com/tubedeck/tubedeck/test/testutil"
)

func newStore() *store.Store {
	return store.New(testutil.NewTestLogger())
}

func TestDefaultState(t *testing.T) {
	s := newStore()
	state := s.Snapshot()

	assert.Nil(t, state.User)
	assert.Equal(t, "light", state.Theme)
	assert.True(t, state.Sidebar.IsOpen)
	assert.Equal(t, 240, state.Sidebar.Width)
	assert.Empty(t, state.Search.RecentSearches)
	assert.Equal(t, 1.0, state.Playback.Volume)
	assert.Equal(t, "auto", state.Playback.Quality)
	assert.Equal(t, 1.0, state.Playback.PlaybackSpeed)
	assert.True(t, state.Playback.Autoplay)
	assert.Equal(t, "all", state.Filters.SelectedCategory)
	assert.Equal(t, "relevance", state.Filters.SortBy)
	assert.False(t, state.Loading["feed"])
	assert.Empty(t, state.Error.GlobalError)

	assert.Equal(t, "dQw4w9WgXcQ", state.Config.FallbackVideo.ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", state.Config.FallbackVideo.URL)
	assert.Equal(t, "Content Not Available - Enjoy this classic!", state.Config.FallbackVideo.Title)
	assert.Equal(t, "Fallback Channel", state.Config.FallbackVideo.ChannelTitle)
}

func TestRecentSearches(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		s := newStore()
		s.Dispatch(store.AddRecentSearch{Term: "react"})
		s.Dispatch(store.AddRecentSearch{Term: "golang"})
		s.Dispatch(store.AddRecentSearch{Term: "css"})

		assert.Equal(t, []string{"css", "golang", "react"}, s.Snapshot().Search.RecentSearches)
	})

	t.Run("repeat moves to front without duplicating", func(t *testing.T) {
		s := newStore()
		s.Dispatch(store.AddRecentSearch{Term: "react"})
		s.Dispatch(store.AddRecentSearch{Term: "golang"})
		s.Dispatch(store.AddRecentSearch{Term: "react"})

		assert.Equal(t, []string{"react", "golang"}, s.Snapshot().Search.RecentSearches)
	})

	t.Run("capped at ten", func(t *testing.T) {
		s := newStore()
		for i := 0; i < 15; i++ {
			s.Dispatch(store.AddRecentSearch{Term: fmt.Sprintf("term-%d", i)})
		}

		searches := s.Snapshot().Search.RecentSearches
		require.Len(t, searches, store.MaxRecentSearches)
		assert.Equal(t, "term-14", searches[0])
		assert.Equal(t, "term-5", searches[len(searches)-1])
	})

	t.Run("empty term is ignored", func(t *testing.T) {
		s := newStore()
		notified := 0
		cancel := s.Subscribe(func(store.AppState) { notified++ })
		defer cancel()

		s.Dispatch(store.AddRecentSearch{Term: ""})

		assert.Empty(t, s.Snapshot().Search.RecentSearches)
		assert.Zero(t, notified)
	})

	t.Run("clear history", func(t *testing.T) {
		s := newStore()
		s.Dispatch(store.AddRecentSearch{Term: "react"})
		s.Dispatch(store.ClearSearchHistory{})

		assert.Empty(t, s.Snapshot().Search.RecentSearches)
	})
}

func TestSidebar(t *testing.T) {
	s := newStore()

	s.Dispatch(store.SetSidebarWidth{Width: 300})
	s.Dispatch(store.ToggleSidebar{})

	state := s.Snapshot()
	assert.False(t, state.Sidebar.IsOpen)
	assert.Equal(t, 300, state.Sidebar.Width, "toggling must preserve width")

	s.Dispatch(store.ToggleSidebar{})
	assert.True(t, s.Snapshot().Sidebar.IsOpen)

	s.Dispatch(store.SetSidebarOpen{IsOpen: false})
	assert.False(t, s.Snapshot().Sidebar.IsOpen)

	s.Dispatch(store.SetSidebarWidth{Width: 0})
	s.Dispatch(store.SetSidebarWidth{Width: -5})
	assert.Equal(t, 300, s.Snapshot().Sidebar.Width, "non-positive widths are ignored")
}

func TestPlaybackSettings(t *testing.T) {
	s := newStore()

	volume := 0.4
	s.Dispatch(store.UpdatePlaybackSettings{Volume: &volume})

	state := s.Snapshot()
	assert.Equal(t, 0.4, state.Playback.Volume)
	assert.Equal(t, "auto", state.Playback.Quality, "unset fields keep their value")
	assert.Equal(t, 1.0, state.Playback.PlaybackSpeed)
	assert.True(t, state.Playback.Autoplay)

	quality := "720p"
	speed := 1.5
	autoplay := false
	s.Dispatch(store.UpdatePlaybackSettings{Quality: &quality, PlaybackSpeed: &speed, Autoplay: &autoplay})

	state = s.Snapshot()
	assert.Equal(t, 0.4, state.Playback.Volume)
	assert.Equal(t, "720p", state.Playback.Quality)
	assert.Equal(t, 1.5, state.Playback.PlaybackSpeed)
	assert.False(t, state.Playback.Autoplay)
}

func TestCurrentVideo(t *testing.T) {
	s := newStore()

	details := &models.VideoDetails{Video: models.Video{ID: "vid_001", Title: "First"}}
	s.Dispatch(store.SetCurrentVideoID{VideoID: "vid_001"})
	s.Dispatch(store.SetCurrentVideoDetails{Details: details})

	state := s.Snapshot()
	assert.Equal(t, "vid_001", state.Playback.CurrentVideoID)
	require.NotNil(t, state.Playback.CurrentVideoDetails)
	assert.Equal(t, "First", state.Playback.CurrentVideoDetails.Title)

	// Switching videos clears the stale detail payload.
	s.Dispatch(store.SetCurrentVideoID{VideoID: "vid_002"})
	state = s.Snapshot()
	assert.Equal(t, "vid_002", state.Playback.CurrentVideoID)
	assert.Nil(t, state.Playback.CurrentVideoDetails)
}

func TestNotifications(t *testing.T) {
	t.Run("push and manual remove", func(t *testing.T) {
		s := newStore()

		id := s.PushNotification("saved", time.Minute)
		require.Len(t, s.Snapshot().UI.Notifications, 1)
		assert.Equal(t, "saved", s.Snapshot().UI.Notifications[0].Message)

		s.Dispatch(store.RemoveNotification{ID: id})
		assert.Empty(t, s.Snapshot().UI.Notifications)

		// Removing an absent id is a no-op.
		s.Dispatch(store.RemoveNotification{ID: id})
		assert.Empty(t, s.Snapshot().UI.Notifications)
	})

	t.Run("expires after its duration", func(t *testing.T) {
		s := newStore()

		s.PushNotification("short lived", 10*time.Millisecond)
		require.Len(t, s.Snapshot().UI.Notifications, 1)

		assert.Eventually(t, func() bool {
			return len(s.Snapshot().UI.Notifications) == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("ids are unique", func(t *testing.T) {
		s := newStore()

		id1 := s.PushNotification("one", time.Minute)
		id2 := s.PushNotification("two", time.Minute)
		assert.NotEqual(t, id1, id2)
		assert.Len(t, s.Snapshot().UI.Notifications, 2)
	})
}

func TestModals(t *testing.T) {
	s := newStore()

	s.Dispatch(store.ToggleModal{ModalID: "settings", Open: true})
	s.Dispatch(store.ToggleModal{ModalID: "share", Open: true})
	s.Dispatch(store.ToggleModal{ModalID: "settings", Open: true})

	assert.Equal(t, []string{"share", "settings"}, s.Snapshot().UI.ActiveModals,
		"reopening must not duplicate the modal id")

	s.Dispatch(store.ToggleModal{ModalID: "share", Open: false})
	assert.Equal(t, []string{"settings"}, s.Snapshot().UI.ActiveModals)
}

func TestErrors(t *testing.T) {
	s := newStore()

	s.Dispatch(store.SetGlobalError{Message: "boom"})
	s.Dispatch(store.SetComponentError{Key: "feed", Message: "feed down"})

	state := s.Snapshot()
	assert.Equal(t, "boom", state.Error.GlobalError)
	assert.Equal(t, "feed down", state.Error.ComponentErrors["feed"])

	s.Dispatch(store.ClearGlobalError{})
	s.Dispatch(store.ClearComponentError{Key: "feed"})

	state = s.Snapshot()
	assert.Empty(t, state.Error.GlobalError)
	assert.NotContains(t, state.Error.ComponentErrors, "feed")
}

func TestFallbackVideoConfig(t *testing.T) {
	s := newStore()

	s.Dispatch(store.UpdateFallbackVideo{Title: "Custom Title"})

	fb := s.Snapshot().Config.FallbackVideo
	assert.Equal(t, "Custom Title", fb.Title)
	assert.Equal(t, store.FallbackVideoID, fb.ID, "empty fields keep their value")
	assert.Equal(t, store.FallbackVideoURL, fb.URL)
}

func TestSubscribe(t *testing.T) {
	s := newStore()

	var seen []string
	cancel := s.Subscribe(func(state store.AppState) {
		seen = append(seen, state.Theme)
	})

	s.Dispatch(store.SetTheme{Theme: "dark"})
	s.Dispatch(store.SetTheme{Theme: "light"})
	require.Equal(t, []string{"dark", "light"}, seen)

	cancel()
	s.Dispatch(store.SetTheme{Theme: "dark"})
	assert.Len(t, seen, 2, "cancelled listeners must not be notified")
}

func TestSnapshotIsolation(t *testing.T) {
	s := newStore()
	s.Dispatch(store.AddRecentSearch{Term: "react"})

	snap := s.Snapshot()
	snap.Search.RecentSearches[0] = "mutated"
	snap.Loading["feed"] = true
	snap.Error.ComponentErrors["x"] = "y"

	state := s.Snapshot()
	assert.Equal(t, "react", state.Search.RecentSearches[0])
	assert.False(t, state.Loading["feed"])
	assert.NotContains(t, state.Error.ComponentErrors, "x")
}

func TestDispatchToleratesZeroValues(t *testing.T) {
	s := newStore()

	actions := []store.Action{
		store.SetUser{},
		store.SetTheme{},
		store.ToggleSidebar{},
		store.SetSidebarOpen{},
		store.SetSidebarWidth{},
		store.AddRecentSearch{},
		store.ClearSearchHistory{},
		store.SetCurrentVideoID{},
		store.SetCurrentVideoDetails{},
		store.UpdatePlaybackSettings{},
		store.SetPlayerState{},
		store.UpdateFilters{},
		store.ToggleMobileMenu{},
		store.SetSearchBarFocus{},
		store.PushNotification{},
		store.RemoveNotification{},
		store.ToggleModal{},
		store.SetLoading{},
		store.SetGlobalError{},
		store.ClearGlobalError{},
		store.SetComponentError{},
		store.ClearComponentError{},
		store.UpdateFallbackVideo{},
	}

	for _, action := range actions {
		assert.NotPanics(t, func() { s.Dispatch(action) })
	}
}
