package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/driftcircuit/archetypes"
	"github.com/automoto/driftcircuit/components"
	cfg "github.com/automoto/driftcircuit/config"
	"github.com/yohamta/donburi"
)

// SubscribeBanners announces checkpoints, laps and results on the banner.
func SubscribeBanners(w donburi.World) {
	components.CheckpointEvent.Subscribe(w, func(w donburi.World, e components.CheckpointEventData) {
		ShowBanner(w, fmt.Sprintf("%s  (%d/%d)", e.Name, e.Index+1, checkpointCount(w)))
	})
	components.LapEvent.Subscribe(w, func(w donburi.World, e components.LapEventData) {
		ShowBanner(w, fmt.Sprintf("LAP %d  %.2fs", e.Lap, e.Split))
	})
	components.RaceFinishedEvent.Subscribe(w, func(w donburi.World, e components.RaceFinishedEventData) {
		if e.Outcome == components.OutcomeNewRecord {
			ShowBanner(w, fmt.Sprintf("NEW RECORD!  %.2fs", e.Time))
			return
		}
		ShowBanner(w, fmt.Sprintf("FINISHED  %.2fs", e.Time))
	})
}

// ShowBanner replaces the current banner text and restarts its timer.
func ShowBanner(w donburi.World, text string) {
	b := GetOrCreateBanner(w)
	b.Text = text
	b.Timer = cfg.Message.DisplayFrames
}

// UpdateBanner counts the banner down, hiding it when the timer runs out.
func UpdateBanner(w donburi.World) {
	b := GetOrCreateBanner(w)
	if b.Timer == 0 {
		return
	}
	b.Timer--
	if b.Timer == 0 {
		b.Text = ""
	}
}

// GetOrCreateBanner returns the singleton Banner component
func GetOrCreateBanner(w donburi.World) *components.BannerData {
	entry, ok := components.Banner.First(w)
	if !ok {
		entry = archetypes.Banner.Spawn(w)
	}
	return components.Banner.Get(entry)
}

// ResolvePlaceholders replaces {placeholder} tokens with input-specific labels
func ResolvePlaceholders(text string, method components.InputMethod) string {
	labels := cfg.Message.KeyboardLabels
	if method == components.InputGamepad {
		labels = cfg.Message.GamepadLabels
	}

	result := text
	for placeholder, label := range labels {
		result = strings.ReplaceAll(result, "{"+placeholder+"}", label)
	}
	return result
}

func checkpointCount(w donburi.World) int {
	n := 0
	components.Checkpoint.Each(w, func(*donburi.Entry) { n++ })
	return n
}
