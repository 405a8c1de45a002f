package content

import (
	"fmt"

	"github.com/yt-analyzer/internal/domain"
)

// PlatformShorts selects the short-form posting schedule.
const PlatformShorts = "shorts"

var (
	shortsSlots = [4]string{"07:30", "12:30", "18:30", "21:00"}
	longSlots   = [4]string{"11:00", "16:00", "19:00", "21:00"}
)

// postSlot is the schedule index that is always recommended.
const postSlot = 2

// PostTime recommends an upload time for the platform, labelled with the
// region. Region defaults to WIB.
func PostTime(region, platform string) string {
	slots := longSlots
	if platform == PlatformShorts {
		slots = shortsSlots
	}
	if region == "" {
		region = domain.DefaultRegion
	}
	return fmt.Sprintf("%s %s (±1 jam)", slots[postSlot], region)
}
