package content

import (
	"fmt"
	"strings"
)

// Format is the content format used to pick an angle.
type Format string

const (
	FormatTutorial Format = "tutorial"
	FormatListicle Format = "listicle"
	FormatStudy    Format = "study"
	FormatReview   Format = "review"
)

// IsKnown reports whether f is one of the formats with a dedicated angle.
func (f Format) IsKnown() bool {
	switch f {
	case FormatTutorial, FormatListicle, FormatStudy, FormatReview:
		return true
	default:
		return false
	}
}

// ParseFormat maps a format hint to a Format, ignoring case.
// Unknown hints return the hint itself, which IsKnown rejects.
func ParseFormat(hint string) Format {
	return Format(strings.ToLower(hint))
}

// Angle returns the content angle for the given format hint.
// Unknown hints fall back to the generic execution framework.
func Angle(formatHint, topic string) string {
	switch ParseFormat(formatHint) {
	case FormatTutorial:
		return fmt.Sprintf("Tutorial langkah-demi-langkah: %s dari nol sampai jadi", topic)
	case FormatListicle:
		return fmt.Sprintf("Daftar 7 langkah/ide untuk %s beserta contoh praktis", topic)
	case FormatStudy:
		return fmt.Sprintf("Studi kasus nyata menerapkan %s dan hasilnya", topic)
	case FormatReview:
		return fmt.Sprintf("Review tools/strategi untuk %s beserta cara pakainya", topic)
	default:
		return fmt.Sprintf("Kerangka eksekusi praktis untuk %s (hook > value > CTA)", topic)
	}
}
