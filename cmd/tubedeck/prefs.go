package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tubedeck/tubedeck/internal/store"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change persisted preferences",
	Example: `  tubedeck prefs
  tubedeck prefs --theme dark --volume 0.5
  tubedeck prefs --toggle-sidebar`,
	Args: cobra.NoArgs,
	RunE: runPrefs,
}

var (
	prefsTheme         string
	prefsVolume        float64
	prefsSpeed         float64
	prefsQuality       string
	prefsAutoplay      bool
	prefsSidebarWidth  int
	prefsToggleSidebar bool
)

func init() {
	rootCmd.AddCommand(prefsCmd)

	prefsCmd.Flags().StringVar(&prefsTheme, "theme", "", "Theme (light or dark)")
	prefsCmd.Flags().Float64Var(&prefsVolume, "volume", 0, "Player volume (0.0 to 1.0)")
	prefsCmd.Flags().Float64Var(&prefsSpeed, "speed", 0, "Playback speed (0.25 to 2.0)")
	prefsCmd.Flags().StringVar(&prefsQuality, "quality", "", "Playback quality (auto, 1080p, 720p, ...)")
	prefsCmd.Flags().BoolVar(&prefsAutoplay, "autoplay", false, "Autoplay next video")
	prefsCmd.Flags().IntVar(&prefsSidebarWidth, "sidebar-width", 0, "Sidebar width in pixels")
	prefsCmd.Flags().BoolVar(&prefsToggleSidebar, "toggle-sidebar", false, "Toggle sidebar visibility")
}

func runPrefs(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if flags.Changed("theme") {
		if prefsTheme != "light" && prefsTheme != "dark" {
			return fmt.Errorf("invalid theme: %s", prefsTheme)
		}
		appClient.Store.Dispatch(store.SetTheme{Theme: prefsTheme})
	}

	playback := store.UpdatePlaybackSettings{}
	changed := false
	if flags.Changed("volume") {
		if prefsVolume < 0 || prefsVolume > 1 {
			return fmt.Errorf("volume must be between 0.0 and 1.0")
		}
		playback.Volume = &prefsVolume
		changed = true
	}
	if flags.Changed("speed") {
		playback.PlaybackSpeed = &prefsSpeed
		changed = true
	}
	if flags.Changed("quality") {
		playback.Quality = &prefsQuality
		changed = true
	}
	if flags.Changed("autoplay") {
		playback.Autoplay = &prefsAutoplay
		changed = true
	}
	if changed {
		appClient.Store.Dispatch(playback)
	}

	if flags.Changed("sidebar-width") {
		appClient.Store.Dispatch(store.SetSidebarWidth{Width: prefsSidebarWidth})
	}
	if prefsToggleSidebar {
		appClient.Store.Dispatch(store.ToggleSidebar{})
	}

	renderPrefs()
	return nil
}

func renderPrefs() {
	state := appClient.Store.Snapshot()
	bold := color.New(color.Bold)

	bold.Println("Preferences:")
	fmt.Printf("  theme:          %s\n", state.Theme)
	fmt.Printf("  volume:         %.2f\n", state.Playback.Volume)
	fmt.Printf("  playback speed: %.2fx\n", state.Playback.PlaybackSpeed)
	fmt.Printf("  quality:        %s\n", state.Playback.Quality)
	fmt.Printf("  autoplay:       %t\n", state.Playback.Autoplay)
	fmt.Printf("  sidebar:        open=%t width=%d\n", state.Sidebar.IsOpen, state.Sidebar.Width)
}
