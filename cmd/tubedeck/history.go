package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recent searches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyClear bool

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyClear, "clear", false,
		"Clear the search history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyClear {
		appClient.Store.Dispatch(store.ClearSearchHistory{})
		fmt.Println("Search history cleared.")
		return nil
	}

	searches := appClient.Store.Snapshot().Search.RecentSearches
	if len(searches) == 0 {
		fmt.Println("No recent searches.")
		return nil
	}
	for i, term := range searches {
		fmt.Printf("%2d. %s\n", i+1, term)
	}
	return nil
}
