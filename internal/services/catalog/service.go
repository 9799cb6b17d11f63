// Package catalog is the mock stand-in for the video backend: a fixed
// in-memory record set served with artificial latency, shuffled output,
// and simulated failure modes.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/services/mock"
)

// Latency factors relative to the configured base delay.
const (
	delayList    = 1.0
	delayRelated = 1.15
	delaySuggest = 0.5
)

// Service serves video, channel and suggestion lookups.
type Service struct {
	env      *mock.Env
	fallback models.FallbackVideo
	logger   *events.Logger
}

// VideoQuery filters a video list request.
type VideoQuery struct {
	Query      string
	Category   string
	MaxResults int
}

// NewService creates a catalog service. fallback configures the record
// substituted for unknown video lookups.
func NewService(env *mock.Env, fallback models.FallbackVideo, logger *events.Logger) *Service {
	return &Service{
		env:      env,
		fallback: fallback,
		logger:   logger.WithField("service", "catalog"),
	}
}

// FetchVideos filters the record set by case-insensitive substring match
// on title/description/channel and by exact category, then returns a
// shuffled, length-capped result with clock-format durations.
func (s *Service) FetchVideos(ctx context.Context, q VideoQuery) ([]models.Video, error) {
	if err := s.env.Sleep(ctx, delayList); err != nil {
		return nil, err
	}

	records := make([]videoRecord, 0, len(videoDatabase))
	for _, rec := range videoDatabase {
		if q.Query != "" && !matchesQuery(rec, q.Query) {
			continue
		}
		if q.Category != "" && q.Category != "all" && rec.Category != q.Category {
			continue
		}
		records = append(records, rec)
	}

	s.env.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	max := q.MaxResults
	if max <= 0 {
		max = 20
	}
	if len(records) > max {
		records = records[:max]
	}

	videos := make([]models.Video, len(records))
	for i, rec := range records {
		videos[i] = rec.toVideo()
	}

	s.logger.WithFields(map[string]interface{}{
		"query":    q.Query,
		"category": q.Category,
		"count":    len(videos),
	}).Debug("Fetched videos")

	return videos, nil
}

// SearchVideos is the search-page entry point; it shares FetchVideos'
// filter semantics but tags unexpected failures as search errors.
func (s *Service) SearchVideos(ctx context.Context, query string, q VideoQuery) ([]models.Video, error) {
	q.Query = query
	videos, err := s.FetchVideos(ctx, q)
	if err != nil {
		return nil, wrapUnexpected(err, fmt.Sprintf("search failed for query %q", query), models.ErrTypeSearch)
	}
	return videos, nil
}

// FetchVideoByID returns full details for a video. An empty or unknown id
// resolves to the fallback record; fallback is policy, never an error.
func (s *Service) FetchVideoByID(ctx context.Context, videoID string) (*models.VideoDetails, error) {
	if videoID == "" {
		s.logger.Warn("Video ID missing, returning fallback video")
		return s.fallbackDetails(), nil
	}

	if err := s.env.Sleep(ctx, delayList); err != nil {
		return nil, err
	}

	rec, ok := findVideo(videoID)
	if !ok {
		s.logger.WithField("video_id", videoID).Warn("Video not found, returning fallback video")
		return s.fallbackDetails(), nil
	}

	details := &models.VideoDetails{
		Video:           rec.toVideo(),
		CommentCount:    int64(float64(rec.Views)*0.0025) + int64(s.env.Intn(100)),
		SubscriberCount: int64(s.env.IntBetween(200_000, 1_699_999)),
	}
	return details, nil
}

// FetchRelatedVideos returns videos related to the given one, favoring
// the same category. The fallback video is allowed to have related
// videos; any other unknown source id is a not-found error.
func (s *Service) FetchRelatedVideos(ctx context.Context, videoID string, maxResults int) ([]models.Video, error) {
	if videoID == "" {
		return nil, models.NewInvalidRequestError("video ID is required for fetching related videos")
	}

	if err := s.env.Sleep(ctx, delayRelated); err != nil {
		return nil, err
	}

	source, sourceKnown := findVideo(videoID)
	if !sourceKnown && videoID != s.fallback.ID {
		return nil, models.NewNotFoundError(
			fmt.Sprintf("cannot fetch related videos: source video %q not found", videoID))
	}

	var related []videoRecord
	for _, rec := range videoDatabase {
		switch {
		case rec.ID == videoID:
			continue
		case videoID == s.fallback.ID:
			if s.env.Float64() < 0.5 {
				related = append(related, rec)
			}
		case sourceKnown && rec.Category == source.Category:
			related = append(related, rec)
		default:
			if s.env.Float64() < 0.3 {
				related = append(related, rec)
			}
		}
	}

	s.env.Shuffle(len(related), func(i, j int) {
		related[i], related[j] = related[j], related[i]
	})

	if maxResults <= 0 {
		maxResults = 10
	}
	if len(related) > maxResults {
		related = related[:maxResults]
	}

	videos := make([]models.Video, len(related))
	for i, rec := range related {
		videos[i] = rec.toVideo()
	}
	return videos, nil
}

// FetchChannelDetails returns a channel record.
func (s *Service) FetchChannelDetails(ctx context.Context, channelID string) (*models.Channel, error) {
	if channelID == "" {
		return nil, models.NewInvalidRequestError("channel ID is required")
	}

	if err := s.env.Sleep(ctx, delayList); err != nil {
		return nil, err
	}

	for _, ch := range channelDatabase {
		if ch.ID == channelID {
			channel := ch
			return &channel, nil
		}
	}
	return nil, models.NewNotFoundError(fmt.Sprintf("channel %q not found", channelID))
}

// FetchSearchSuggestions returns query completions: matching base
// suggestions plus dynamic variants of the query itself, deduplicated,
// shuffled, capped. An empty query yields no suggestions, not an error.
func (s *Service) FetchSearchSuggestions(ctx context.Context, query string, maxResults int) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	if err := s.env.Sleep(ctx, delaySuggest); err != nil {
		return nil, err
	}

	folded := foldString(query)
	var matched []string
	for _, sug := range baseSuggestions {
		if strings.Contains(foldString(sug), folded) {
			matched = append(matched, sug)
		}
	}

	if len(query) > 2 {
		for _, dynamic := range []string{
			query + " tutorial",
			"learn " + query,
			"best " + query + " of 2024",
		} {
			if !hasPrefixSuggestion(matched, dynamic) {
				matched = append(matched, dynamic)
			}
		}
	}

	matched = dedupe(matched)
	s.env.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if maxResults <= 0 {
		maxResults = 10
	}
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched, nil
}

// FallbackID returns the configured fallback video id.
func (s *Service) FallbackID() string {
	return s.fallback.ID
}

// KnownVideo reports whether id exists in the record set or is the
// fallback id. The comments service uses this for post-target checks.
func (s *Service) KnownVideo(id string) bool {
	if id == s.fallback.ID {
		return true
	}
	_, ok := findVideo(id)
	return ok
}

func (s *Service) fallbackDetails() *models.VideoDetails {
	return &models.VideoDetails{
		Video: models.Video{
			ID:            s.fallback.ID,
			Title:         s.fallback.Title,
			Description:   "The requested video could not be found. Please enjoy this fallback content while we figure things out! #fallback #classic #notfound",
			Thumbnail:     stockThumbnail,
			ChannelID:     "fallbackChannel123",
			ChannelTitle:  s.fallback.ChannelTitle,
			ChannelAvatar: stockThumbnail,
			Views:         int64(s.env.IntBetween(500, 1499)),
			LikeCount:     int64(s.env.IntBetween(50, 149)),
			PublishedAt:   s.env.PastDate(30, 120),
			Duration:      models.FormatDuration("PT3M32S"),
			Category:      "music",
			VideoURL:      s.fallback.URL,
		},
		CommentCount:    int64(s.env.Intn(20)),
		SubscriberCount: int64(s.env.IntBetween(1000, 10999)),
	}
}

func (r videoRecord) toVideo() models.Video {
	return models.Video{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Thumbnail:     stockThumbnail,
		ChannelID:     r.ChannelID,
		ChannelTitle:  r.ChannelTitle,
		ChannelAvatar: stockThumbnail,
		Views:         r.Views,
		LikeCount:     r.LikeCount,
		PublishedAt:   r.PublishedAt,
		Duration:      models.FormatDuration(r.Duration),
		Category:      r.Category,
		VideoURL:      "https://www.youtube.com/watch?v=" + r.ID,
	}
}

func findVideo(id string) (videoRecord, bool) {
	for _, rec := range videoDatabase {
		if rec.ID == id {
			return rec, true
		}
	}
	return videoRecord{}, false
}

func matchesQuery(rec videoRecord, query string) bool {
	folded := foldString(query)
	return strings.Contains(foldString(rec.Title), folded) ||
		strings.Contains(foldString(rec.Description), folded) ||
		strings.Contains(foldString(rec.ChannelTitle), folded)
}

// foldString applies Unicode case folding for case-insensitive matching.
func foldString(s string) string {
	return cases.Fold().String(s)
}

func hasPrefixSuggestion(suggestions []string, candidate string) bool {
	for _, s := range suggestions {
		if strings.HasPrefix(s, candidate) {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// wrapUnexpected converts unexpected internal failures into the generic
// service error shape, leaving typed API errors and context cancellation
// untouched.
func wrapUnexpected(err error, message, errType string) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return models.NewAPIError(fmt.Sprintf("%s: %v", message, err), 500, errType)
}
