// Package comments is the mock comment backend: generated comment lists
// and submission with simulated validation failures.
package comments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/services/mock"
)

// SentinelNotFoundID is the video id that reproducibly fails comment
// fetches with a not-found error.
const SentinelNotFoundID = "non_existent_video_for_comments"

// forbiddenMarker triggers the simulated server-side content validation
// failure on submission.
const forbiddenMarker = "forbidden_word"

const (
	delayFetch = 1.3
	delayPost  = 0.85
)

const stockAvatar = "https://images.unsplash.com/source-404?fit=crop&fm=jpg&h=800&q=60&w=1200"

// VideoChecker reports whether a video id can receive comments.
type VideoChecker interface {
	KnownVideo(id string) bool
}

// Service serves comment fetches and submissions.
type Service struct {
	env    *mock.Env
	videos VideoChecker
	logger *events.Logger
}

// NewService creates a comments service. videos decides which ids accept
// posted comments.
func NewService(env *mock.Env, videos VideoChecker, logger *events.Logger) *Service {
	return &Service{
		env:    env,
		videos: videos,
		logger: logger.WithField("service", "comments"),
	}
}

type baseComment struct {
	idPrefix string
	text     string
	author   models.Author
	likes    int
	replies  int
}

var baseComments = []baseComment{
	{"c1", "This was incredibly insightful! Thank you for breaking it down so clearly.",
		models.Author{Name: "Alex Johnson", Avatar: stockAvatar}, 152, 2},
	{"c2", "Fantastic content as always! I've learned so much from your channel.",
		models.Author{Name: "Sarah Williams", Avatar: stockAvatar, Verified: true}, 89, 1},
	{"c3", "Your explanations are top-notch. Made a complex topic seem easy. Subscribed!",
		models.Author{Name: "Michael Chen", Avatar: stockAvatar}, 234, 4},
	{"c4", "I've been searching for a clear tutorial on this. This is exactly what I needed. Thank you!",
		models.Author{Name: "Emma Rodriguez", Avatar: stockAvatar}, 75, 0},
	{"c5", "Interesting perspective around the 12:35 mark, though I see it a bit differently. Overall, very informative.",
		models.Author{Name: "David Thompson", Avatar: stockAvatar, Verified: true}, 42, 3},
	{"c6", "Would love a follow-up video on the more advanced aspects of this topic!",
		models.Author{Name: "Olivia Lee", Avatar: stockAvatar}, 102, 0},
}

// FetchComments returns a shuffled, capped list of generated comments for
// a video. The sentinel id fails with not-found; an empty id is an
// invalid request.
func (s *Service) FetchComments(ctx context.Context, videoID string, maxResults int) ([]models.Comment, error) {
	if videoID == "" {
		return nil, models.NewInvalidRequestError("video ID is required for fetching comments")
	}

	if err := s.env.Sleep(ctx, delayFetch); err != nil {
		return nil, err
	}

	if videoID == SentinelNotFoundID {
		return nil, models.NewNotFoundError(
			fmt.Sprintf("comments not found; video ID %q may be invalid or have no comments", videoID))
	}

	if maxResults <= 0 {
		maxResults = 20
	}

	comments := make([]models.Comment, 0, maxResults)
	for i := 0; i < maxResults; i++ {
		base := baseComments[i%len(baseComments)]
		comments = append(comments, models.Comment{
			ID:        fmt.Sprintf("%s_%s_%d", base.idPrefix, videoID, i),
			Text:      base.text,
			Author:    base.author,
			Likes:     int(float64(base.likes) * (s.env.Float64()*0.3 + 0.85)),
			Replies:   int(float64(base.replies) * (s.env.Float64()*0.5 + 0.5)),
			Timestamp: s.env.PastDate(1, 30+i*5),
		})
	}

	s.env.Shuffle(len(comments), func(i, j int) {
		comments[i], comments[j] = comments[j], comments[i]
	})

	s.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"count":    len(comments),
	}).Debug("Fetched comments")

	return comments, nil
}

// PostComment creates a comment on a video. All three arguments are
// required; the video must be known (the fallback video accepts
// comments); text containing the forbidden marker fails content
// validation with a 400.
func (s *Service) PostComment(ctx context.Context, videoID, text string, user *models.User) (*models.Comment, error) {
	if videoID == "" || text == "" || user == nil {
		return nil, models.NewInvalidRequestError("video ID, comment text, and user info are required")
	}

	if err := s.env.Sleep(ctx, delayPost); err != nil {
		return nil, err
	}

	if !s.videos.KnownVideo(videoID) {
		return nil, models.NewNotFoundError(
			fmt.Sprintf("cannot post comment: video %q not found", videoID))
	}

	if strings.Contains(strings.ToLower(text), forbiddenMarker) {
		return nil, models.NewAPIError("comment contains forbidden words", 400, models.ErrTypeCommentContent)
	}

	author := models.Author{
		Name:     user.Name,
		Avatar:   user.Avatar,
		Verified: user.Verified,
	}
	if author.Name == "" {
		author.Name = "CurrentUser"
	}
	if author.Avatar == "" {
		author.Avatar = stockAvatar
	}

	comment := &models.Comment{
		ID:        "comment_new_" + uuid.NewString(),
		Text:      text,
		Author:    author,
		Likes:     0,
		Replies:   0,
		Timestamp: s.env.Now(),
	}

	s.logger.WithField("video_id", videoID).Debug("Posted comment")
	return comment, nil
}
