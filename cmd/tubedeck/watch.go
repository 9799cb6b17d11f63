package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch <video-id>",
	Short: "Show a video page: details, related videos and comments",
	Example: `  tubedeck watch video1
  tubedeck watch nonexistent-id`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchComments int

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchComments, "comments", 10,
		"Number of comments to show")
}

func runWatch(cmd *cobra.Command, args []string) error {
	videoID := args[0]
	ctx := cmd.Context()

	appClient.Store.Dispatch(store.SetCurrentVideoID{VideoID: videoID})
	appClient.Store.Dispatch(store.SetLoading{Key: "videoDetail", Value: true})

	details, err := appClient.Catalog.FetchVideoByID(ctx, videoID)
	appClient.Store.Dispatch(store.SetLoading{Key: "videoDetail", Value: false})
	if err != nil {
		return renderServiceError(err)
	}

	// The lookup may have resolved to the fallback video. Only record the
	// result if the user has not navigated away in the meantime.
	if appClient.Store.Snapshot().Playback.CurrentVideoID == videoID {
		appClient.Store.Dispatch(store.SetCurrentVideoDetails{Details: details})
	}

	renderVideoDetails(videoID, details)

	related, err := appClient.Catalog.FetchRelatedVideos(ctx, details.ID, 10)
	if err != nil {
		logger.WithError(err).Warn("Failed to fetch related videos")
	} else if len(related) > 0 {
		color.New(color.Bold).Println("\nRelated videos:")
		renderVideoList(related)
	}

	appClient.Store.Dispatch(store.SetLoading{Key: "comments", Value: true})
	defer appClient.Store.Dispatch(store.SetLoading{Key: "comments", Value: false})

	comments, err := appClient.Comments.FetchComments(ctx, details.ID, watchComments)
	if err != nil {
		if models.IsNotFound(err) {
			fmt.Println("\nNo comments available for this video.")
			return nil
		}
		return renderServiceError(err)
	}

	color.New(color.Bold).Printf("\nComments (%d):\n", len(comments))
	for _, c := range comments {
		renderComment(c)
	}
	return nil
}

func renderVideoDetails(requestedID string, d *models.VideoDetails) {
	title := color.New(color.Bold)
	dim := color.New(color.Faint)

	if d.ID != requestedID {
		color.New(color.FgYellow).Printf("Video %q is unavailable, playing a substitute.\n\n", requestedID)
	}

	title.Println(d.Title)
	fmt.Printf("%s · %d subscribers\n", d.ChannelTitle, d.SubscriberCount)
	fmt.Printf("%s · %s · %d likes\n",
		models.FormatViewCount(d.Views),
		models.FormatPublishedDate(d.PublishedAt),
		d.LikeCount)
	dim.Printf("%s\n", models.TruncateText(d.Description, 200))
	dim.Printf("url: %s\n", d.VideoURL)
}

func renderComment(c models.Comment) {
	author := color.New(color.Bold)
	dim := color.New(color.Faint)

	author.Printf("%s", c.Author.Name)
	if c.Author.Verified {
		fmt.Print(" ✓")
	}
	dim.Printf("  %s\n", models.FormatPublishedDate(c.Timestamp))
	fmt.Printf("  %s\n", c.Text)
	dim.Printf("  %d likes · %d replies\n", c.Likes, c.Replies)
}
