package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tubedeck/tubedeck/internal/models"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"minutes and seconds", "PT27M35S", "27:35"},
		{"seconds padded", "PT3M5S", "3:05"},
		{"with hours", "PT1H2M3S", "1:02:03"},
		{"hours only", "PT2H", "2:00:00"},
		{"seconds only", "PT45S", "0:45"},
		{"clock format passes through", "12:50", "12:50"},
		{"clock format with hours passes through", "1:02:03", "1:02:03"},
		{"empty", "", "0:00"},
		{"garbage", "about an hour", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FormatDuration(tt.input))
		})
	}
}

func TestFormatViewCount(t *testing.T) {
	assert.Equal(t, "1.2M views", models.FormatViewCount(1_250_000))
	assert.Equal(t, "45.0K views", models.FormatViewCount(45_000))
	assert.Equal(t, "999 views", models.FormatViewCount(999))
	assert.Equal(t, "0 views", models.FormatViewCount(0))
	assert.Equal(t, "No views", models.FormatViewCount(-1))
}

func TestFormatPublishedDate(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "", models.FormatPublishedDate(time.Time{}))
	assert.Equal(t, "just now", models.FormatPublishedDate(now.Add(-30*time.Second)))
	assert.Equal(t, "just now", models.FormatPublishedDate(now.Add(time.Hour)), "future dates clamp to now")
	assert.Equal(t, "5 minutes ago", models.FormatPublishedDate(now.Add(-5*time.Minute)))
	assert.Equal(t, "1 hour ago", models.FormatPublishedDate(now.Add(-90*time.Minute)))
	assert.Equal(t, "3 days ago", models.FormatPublishedDate(now.Add(-3*24*time.Hour)))
	assert.Equal(t, "2 weeks ago", models.FormatPublishedDate(now.Add(-15*24*time.Hour)))
	assert.Equal(t, "2 months ago", models.FormatPublishedDate(now.Add(-70*24*time.Hour)))
	assert.Equal(t, "2 years ago", models.FormatPublishedDate(now.Add(-800*24*time.Hour)))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", models.TruncateText("short", 10))
	assert.Equal(t, "trunc...", models.TruncateText("truncate me", 5))
	assert.Equal(t, "", models.TruncateText("", 5))
	assert.Equal(t, "exact", models.TruncateText("exact", 5))
	assert.Equal(t, "no trail...", models.TruncateText("no trail ing space", 9),
		"trailing whitespace is trimmed before the ellipsis")
}
