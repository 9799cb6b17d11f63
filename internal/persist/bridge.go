package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/store"
)

// PersistedState is the whitelisted subset of application state mirrored
// to durable storage. Nothing outside these fields is ever persisted.
type PersistedState struct {
	Theme    string             `json:"theme"`
	Playback PersistedPlayback  `json:"playback"`
	Search   PersistedSearch    `json:"search"`
	Sidebar  store.SidebarState `json:"sidebar"`
	Config   PersistedConfig    `json:"config"`
}

// PersistedPlayback keeps durable playback preferences only; live state
// (current video, progress, playing flag) is deliberately excluded.
type PersistedPlayback struct {
	Volume        float64 `json:"volume"`
	Quality       string  `json:"quality"`
	PlaybackSpeed float64 `json:"playbackSpeed"`
	Autoplay      bool    `json:"autoplay"`
}

// PersistedSearch keeps the recent-search list.
type PersistedSearch struct {
	RecentSearches []string `json:"recentSearches"`
}

// PersistedConfig keeps the fallback-video configuration.
type PersistedConfig struct {
	FallbackVideo models.FallbackVideo `json:"fallbackVideo"`
}

// Bridge mirrors the whitelisted state subset to a KVStore and replays it
// into the store at startup.
type Bridge struct {
	store  *store.Store
	kv     KVStore
	logger *events.Logger

	lastBlob    []byte
	lastHistory []byte
	unsubscribe func()
}

// NewBridge creates a persistence bridge. Call Rehydrate before Attach so
// the initial write reflects the restored state.
func NewBridge(st *store.Store, kv KVStore, logger *events.Logger) *Bridge {
	return &Bridge{
		store:  st,
		kv:     kv,
		logger: logger.WithField("component", "persist_bridge"),
	}
}

// persistedBlob mirrors PersistedState with optional sections, so blobs
// written by older versions replay only what they actually contain.
type persistedBlob struct {
	Theme    string              `json:"theme"`
	Playback *PersistedPlayback  `json:"playback"`
	Search   *PersistedSearch    `json:"search"`
	Sidebar  *store.SidebarState `json:"sidebar"`
	Config   *PersistedConfig    `json:"config"`
}

// Rehydrate reads the persisted blob and replays each known sub-section
// into the store via the normal action set, so invariants such as the
// recent-search cap are re-enforced. Absence or corruption of the blob is
// logged and otherwise ignored; startup never blocks on it.
func (b *Bridge) Rehydrate() {
	data, err := b.kv.Load(StateKey)
	if err != nil {
		if !errors.Is(err, models.ErrStateNotFound) {
			b.logger.WithError(err).Warn("Failed to load persisted state, using defaults")
			_ = b.kv.Delete(StateKey)
		}
		return
	}

	var persisted persistedBlob
	if err := json.Unmarshal(data, &persisted); err != nil {
		b.logger.WithError(err).Warn("Persisted state is unparsable, using defaults")
		_ = b.kv.Delete(StateKey)
		return
	}

	if persisted.Theme != "" {
		b.store.Dispatch(store.SetTheme{Theme: persisted.Theme})
	}

	if p := persisted.Playback; p != nil {
		b.store.Dispatch(store.UpdatePlaybackSettings{
			Volume:        &p.Volume,
			Quality:       &p.Quality,
			PlaybackSpeed: &p.PlaybackSpeed,
			Autoplay:      &p.Autoplay,
		})
	}

	recent := b.loadRecentSearches(persisted.Search)
	// Replay oldest-first so the store rebuilds most-recent-first order.
	for i := len(recent) - 1; i >= 0; i-- {
		b.store.Dispatch(store.AddRecentSearch{Term: recent[i]})
	}

	if persisted.Sidebar != nil {
		b.store.Dispatch(store.SetSidebarOpen{IsOpen: persisted.Sidebar.IsOpen})
		if persisted.Sidebar.Width > 0 {
			b.store.Dispatch(store.SetSidebarWidth{Width: persisted.Sidebar.Width})
		}
	}

	if persisted.Config != nil {
		fb := persisted.Config.FallbackVideo
		b.store.Dispatch(store.UpdateFallbackVideo{
			URL:          fb.URL,
			ID:           fb.ID,
			Title:        fb.Title,
			ChannelTitle: fb.ChannelTitle,
		})
	}

	b.logger.Debug("Rehydrated persisted state")
}

// loadRecentSearches prefers the blob's search section and falls back to
// the separately-keyed history file, which blobs written before the
// section existed do not carry.
func (b *Bridge) loadRecentSearches(section *PersistedSearch) []string {
	if section != nil {
		return section.RecentSearches
	}
	terms, err := LoadSearchHistory(b.kv)
	if err != nil {
		b.logger.WithError(err).Warn("Failed to load search history")
		return nil
	}
	return terms
}

// Attach subscribes to the store. Every dispatch that changes the
// whitelisted subset is written through synchronously before the dispatch
// returns. Returns a detach function.
func (b *Bridge) Attach() func() {
	// Seed the change detector from the current state so attaching does
	// not trigger a spurious write.
	snapshot := b.store.Snapshot()
	b.lastBlob, _ = json.Marshal(Whitelist(snapshot))
	b.lastHistory, _ = json.Marshal(normalizeHistory(snapshot.Search.RecentSearches))

	b.unsubscribe = b.store.Subscribe(func(s store.AppState) {
		b.persist(s)
	})
	return b.unsubscribe
}

// Flush writes the current state unconditionally.
func (b *Bridge) Flush() error {
	snapshot := b.store.Snapshot()

	blob, err := json.Marshal(Whitelist(snapshot))
	if err != nil {
		return fmt.Errorf("marshal persisted state: %w", err)
	}
	if err := b.kv.Save(StateKey, blob); err != nil {
		return fmt.Errorf("save persisted state: %w", err)
	}
	b.lastBlob = blob

	if err := SaveSearchHistory(b.kv, snapshot.Search.RecentSearches); err != nil {
		return err
	}
	b.lastHistory, _ = json.Marshal(normalizeHistory(snapshot.Search.RecentSearches))

	return nil
}

func (b *Bridge) persist(s store.AppState) {
	blob, err := json.Marshal(Whitelist(s))
	if err != nil {
		b.logger.WithError(err).Error("Failed to marshal persisted state")
		return
	}

	if !bytes.Equal(blob, b.lastBlob) {
		if err := b.kv.Save(StateKey, blob); err != nil {
			b.logger.WithError(err).Error("Failed to save persisted state")
		} else {
			b.lastBlob = blob
		}
	}

	history, err := json.Marshal(normalizeHistory(s.Search.RecentSearches))
	if err != nil {
		return
	}
	if !bytes.Equal(history, b.lastHistory) {
		if err := b.kv.Save(HistoryKey, history); err != nil {
			b.logger.WithError(err).Error("Failed to save search history")
		} else {
			b.lastHistory = history
		}
	}
}

// Whitelist extracts the persisted subset from a state snapshot.
func Whitelist(s store.AppState) PersistedState {
	recent := s.Search.RecentSearches
	if recent == nil {
		recent = []string{}
	}

	return PersistedState{
		Theme: s.Theme,
		Playback: PersistedPlayback{
			Volume:        s.Playback.Volume,
			Quality:       s.Playback.Quality,
			PlaybackSpeed: s.Playback.PlaybackSpeed,
			Autoplay:      s.Playback.Autoplay,
		},
		Search:  PersistedSearch{RecentSearches: recent},
		Sidebar: s.Sidebar,
		Config:  PersistedConfig{FallbackVideo: s.Config.FallbackVideo},
	}
}
