package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/models"
	"github.com/tubedeck/tubedeck/internal/store"
)

var commentCmd = &cobra.Command{
	Use:     "comment <video-id> <text>",
	Short:   "Post a comment on a video",
	Example: `  tubedeck comment video1 "Great explanation!"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runComment,
}

func init() {
	rootCmd.AddCommand(commentCmd)
}

func runComment(cmd *cobra.Command, args []string) error {
	videoID := args[0]
	text := args[1]

	// Empty input never reaches the service, the validation message is
	// shown inline instead.
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("comment text cannot be empty")
	}

	user := appClient.Store.Snapshot().User
	if user == nil {
		user = &models.User{Name: "CurrentUser"}
	}

	comment, err := appClient.Comments.PostComment(cmd.Context(), videoID, text, user)
	if err != nil {
		if models.IsInvalidRequest(err) {
			return fmt.Errorf("comment rejected: %w", err)
		}
		if models.IsNotFound(err) {
			return fmt.Errorf("video %s not found", videoID)
		}
		return renderServiceError(err)
	}

	appClient.Store.PushNotification("Comment posted", store.DefaultNotificationTTL)

	color.New(color.FgGreen).Println("Comment posted:")
	renderComment(*comment)
	return nil
}
