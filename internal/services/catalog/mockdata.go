package catalog

import (
	"time"

	"github.com/tubedeck/tubedeck/internal/models"
)

const stockThumbnail = "https://images.unsplash.com/source-404?fit=crop&fm=jpg&h=800&q=60&w=1200"

// videoRecord is a database row; Duration stays in ISO-8601 form and is
// converted to clock format on the way out.
type videoRecord struct {
	ID           string
	Title        string
	Description  string
	ChannelID    string
	ChannelTitle string
	Views        int64
	LikeCount    int64
	PublishedAt  time.Time
	Duration     string
	Category     string
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var videoDatabase = []videoRecord{
	{
		ID:           "video1",
		Title:        "React Hooks Complete Tutorial",
		Description:  "Learn all about React Hooks in this comprehensive guide. This video covers useState, useEffect, useContext, useReducer, useCallback, useMemo, useRef, and custom hooks. Perfect for beginners and intermediate developers looking to deepen their understanding of React.",
		ChannelID:    "channel1",
		ChannelTitle: "CodeMastery",
		Views:        1250000,
		LikeCount:    45000,
		PublishedAt:  mustTime("2023-04-15T14:30:00Z"),
		Duration:     "PT27M35S",
		Category:     "coding",
	},
	{
		ID:           "video2",
		Title:        "Beautiful Places to Visit in Japan",
		Description:  "Discover the most scenic locations across Japan. From the bustling streets of Tokyo to the serene temples of Kyoto, and the natural beauty of Hokkaido. This travel guide showcases must-see destinations.",
		ChannelID:    "channel2",
		ChannelTitle: "Travel Essence",
		Views:        2450000,
		LikeCount:    187000,
		PublishedAt:  mustTime("2023-05-22T10:15:00Z"),
		Duration:     "PT15M42S",
		Category:     "travel",
	},
	{
		ID:           "video3",
		Title:        "Modern JavaScript ES6+ Features",
		Description:  "Deep dive into the most useful ES6+ features every developer should know. Covers arrow functions, destructuring, template literals, promises, async/await, modules, and more.",
		ChannelID:    "channel3",
		ChannelTitle: "JS Wizards",
		Views:        890000,
		LikeCount:    62000,
		PublishedAt:  mustTime("2023-06-10T08:45:00Z"),
		Duration:     "PT19M15S",
		Category:     "coding",
	},
	{
		ID:           "video4",
		Title:        "Easy 30-Minute Dinner Recipes",
		Description:  "Quick and delicious meals you can prepare in under 30 minutes. Perfect for busy weeknights. Includes recipes for pasta, chicken, and vegetarian options.",
		ChannelID:    "channel4",
		ChannelTitle: "Tasty Bites",
		Views:        1750000,
		LikeCount:    120000,
		PublishedAt:  mustTime("2023-07-05T16:20:00Z"),
		Duration:     "PT12M50S",
		Category:     "cooking",
	},
	{
		ID:           "video5",
		Title:        "Building a YouTube Clone with React",
		Description:  "Step-by-step guide to build a YouTube clone using React and modern web technologies. Covers component structure, API integration, state management, and styling with Tailwind CSS.",
		ChannelID:    "channel5",
		ChannelTitle: "Web Dev Simplified",
		Views:        980000,
		LikeCount:    85000,
		PublishedAt:  mustTime("2023-08-01T12:30:00Z"),
		Duration:     "PT45M20S",
		Category:     "coding",
	},
	{
		ID:           "video6",
		Title:        "Advanced CSS Grid Layout Techniques",
		Description:  "Explore complex layouts and advanced features of CSS Grid. Learn about fr units, minmax(), auto-fit, auto-fill, and responsive design with Grid.",
		ChannelID:    "channel6",
		ChannelTitle: "CSS Masters",
		Views:        650000,
		LikeCount:    32000,
		PublishedAt:  mustTime("2023-09-10T11:00:00Z"),
		Duration:     "PT22M10S",
		Category:     "coding",
	},
	{
		ID:           "video7",
		Title:        "Exploring the Wonders of Patagonia",
		Description:  "A breathtaking journey through the landscapes of Patagonia. Glaciers, mountains, and unique wildlife in one of the world's most remote regions.",
		ChannelID:    "channel7",
		ChannelTitle: "Adventure Vistas",
		Views:        1100000,
		LikeCount:    95000,
		PublishedAt:  mustTime("2023-10-02T18:30:00Z"),
		Duration:     "PT18M05S",
		Category:     "travel",
	},
}

var channelDatabase = []models.Channel{
	{
		ID:              "channel1",
		Title:           "CodeMastery",
		Description:     "High-quality programming tutorials.",
		Avatar:          stockThumbnail,
		Banner:          stockThumbnail,
		SubscriberCount: 1250000,
		VideoCount:      342,
		JoinDate:        mustTime("2018-03-15T00:00:00Z"),
		Verified:        true,
		Country:         "United States",
	},
	{
		ID:              "channel2",
		Title:           "Travel Essence",
		Description:     "Exploring the world's beauty.",
		Avatar:          stockThumbnail,
		Banner:          stockThumbnail,
		SubscriberCount: 2450000,
		VideoCount:      180,
		JoinDate:        mustTime("2017-07-20T00:00:00Z"),
		Verified:        true,
		Country:         "Canada",
	},
	{
		ID:              "channel3",
		Title:           "JS Wizards",
		Description:     "JavaScript tips and tricks.",
		Avatar:          stockThumbnail,
		Banner:          stockThumbnail,
		SubscriberCount: 890000,
		VideoCount:      210,
		JoinDate:        mustTime("2019-01-10T00:00:00Z"),
		Verified:        false,
		Country:         "United Kingdom",
	},
}

var baseSuggestions = []string{
	"react tutorial", "javascript for beginners", "tailwind css crash course",
	"best cooking recipes", "travel vlog japan", "how to learn coding",
	"css grid vs flexbox", "python data analysis", "game development basics",
	"AI for programmers", "web design trends 2024", "building a startup",
}
