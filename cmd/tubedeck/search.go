package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/services/catalog"
	"github.com/tubedeck/tubedeck/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search videos",
	Example: `  tubedeck search react
  tubedeck search "css grid" --suggest`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchMax     int
	searchSuggest bool
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchMax, "max", "m", 20,
		"Maximum number of results")
	searchCmd.Flags().BoolVar(&searchSuggest, "suggest", false,
		"Also show search suggestions for the query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	appClient.Store.Dispatch(store.AddRecentSearch{Term: query})
	appClient.Store.Dispatch(store.SetLoading{Key: "searchResults", Value: true})
	defer appClient.Store.Dispatch(store.SetLoading{Key: "searchResults", Value: false})

	videos, err := appClient.Catalog.SearchVideos(cmd.Context(), query, catalog.VideoQuery{
		MaxResults: searchMax,
	})
	if err != nil {
		appClient.Store.Dispatch(store.SetComponentError{Key: "searchResults", Message: err.Error()})
		return renderServiceError(err)
	}
	appClient.Store.Dispatch(store.ClearComponentError{Key: "searchResults"})

	renderVideoList(videos)

	if searchSuggest {
		suggestions, err := appClient.Catalog.FetchSearchSuggestions(cmd.Context(), query, 10)
		if err != nil {
			logger.WithError(err).Warn("Failed to fetch suggestions")
			return nil
		}
		if len(suggestions) > 0 {
			color.New(color.Bold).Println("\nRelated searches:")
			for _, s := range suggestions {
				fmt.Printf("  %s\n", s)
			}
		}
	}
	return nil
}
