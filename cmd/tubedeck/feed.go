package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/services/catalog"
	"github.com/tubedeck/tubedeck/internal/store"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the home feed",
	Example: `  tubedeck feed
  tubedeck feed --category coding --max 5`,
	Args: cobra.NoArgs,
	RunE: runFeed,
}

var (
	feedCategory string
	feedMax      int
)

func init() {
	rootCmd.AddCommand(feedCmd)

	feedCmd.Flags().StringVarP(&feedCategory, "category", "c", "all",
		"Category filter (all, coding, travel, cooking, ...)")
	feedCmd.Flags().IntVarP(&feedMax, "max", "m", 20,
		"Maximum number of results")
}

func runFeed(cmd *cobra.Command, args []string) error {
	appClient.Store.Dispatch(store.UpdateFilters{SelectedCategory: &feedCategory})
	appClient.Store.Dispatch(store.SetLoading{Key: "feed", Value: true})
	defer appClient.Store.Dispatch(store.SetLoading{Key: "feed", Value: false})

	videos, err := appClient.Catalog.FetchVideos(cmd.Context(), catalog.VideoQuery{
		Category:   feedCategory,
		MaxResults: feedMax,
	})
	if err != nil {
		appClient.Store.Dispatch(store.SetComponentError{Key: "feed", Message: err.Error()})
		return renderServiceError(err)
	}
	appClient.Store.Dispatch(store.ClearComponentError{Key: "feed"})

	renderVideoList(videos)
	return nil
}

func renderVideoList(videos []models.Video) {
	if len(videos) == 0 {
		fmt.Println("No videos found.")
		return
	}

	title := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, v := range videos {
		title.Printf("%s", v.Title)
		fmt.Printf("  [%s]\n", v.Duration)
		dim.Printf("  %s · %s · %s · id=%s\n",
			v.ChannelTitle,
			models.FormatViewCount(v.Views),
			models.FormatPublishedDate(v.PublishedAt),
			v.ID)
	}
}

// renderServiceError translates the error taxonomy into user-facing
// output: generic service failures get a retry affordance, everything
// else is surfaced as-is.
func renderServiceError(err error) error {
	if models.IsServerError(err) {
		return fmt.Errorf("%w (try again)", err)
	}
	return err
}
