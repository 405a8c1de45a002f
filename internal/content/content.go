// Package content builds the textual artifacts of a content plan: title,
// hook, angle, call-to-action, description, hashtags and posting time.
//
// Every generator is a pure function of its inputs and is total over the
// inputs the analyzer passes in. An empty optional value (audience, niche,
// region) means the value is absent.
package content

import (
	"fmt"
	"strings"

	"github.com/yt-analyzer/pkg/textutil"
)

const (
	titleSuffix = "Panduan Lengkap"

	hookPhrase  = "rahasia yang jarang dibahas"
	hookClosing = " yang wajib kamu tahu sekarang"

	// HookMinWords and HookMaxWords bound the hook length in words.
	HookMinWords = 6
	HookMaxWords = 16

	ctaGeneric  = "Subscribe untuk tips tiap minggu dan tinggalkan komentar pertanyaanmu!"
	ctaAudience = "Subscribe untuk %s tips mingguan, like & komentar topik selanjutnya!"

	descriptionFiller = " Tonton sampai akhir untuk rangkuman dan template gratis."

	// DescriptionMinLen and DescriptionMaxLen bound the description length in runes.
	DescriptionMinLen = 80
	DescriptionMaxLen = 220

	// descriptionKeywordLimit is how many keywords are listed in the description.
	descriptionKeywordLimit = 3
)

// Title combines the leading keyword with the topic.
// With no keywords the first word of topic is used instead.
func Title(topic string, keywords []string) string {
	kw := textutil.FirstWord(topic)
	if len(keywords) > 0 {
		kw = keywords[0]
	}
	return fmt.Sprintf("%s: %s | %s", textutil.Capitalize(kw), topic, titleSuffix)
}

// Hook builds the opening line and keeps it within HookMaxWords words.
// Short hooks get one fixed closing phrase appended; that pad is not
// guaranteed to reach HookMinWords.
func Hook(topic, audience string) string {
	base := fmt.Sprintf("%s: %s", topic, hookPhrase)
	if audience != "" {
		base = fmt.Sprintf("%s untuk %s: %s", topic, audience, hookPhrase)
	}

	n := textutil.WordCount(base)
	switch {
	case n < HookMinWords:
		base += hookClosing
	case n > HookMaxWords:
		base = textutil.TruncateWords(base, HookMaxWords)
	}
	return base
}

// CTA returns the call-to-action line, personalised when audience is set.
func CTA(audience string) string {
	if audience == "" {
		return ctaGeneric
	}
	return fmt.Sprintf(ctaAudience, audience)
}

// Description builds the video description. It lists up to three keywords,
// pads once with a filler sentence when shorter than DescriptionMinLen and
// is cut to DescriptionMaxLen runes.
func Description(topic string, keywords []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bahas %s dengan contoh praktis dan langkah yang bisa langsung dipakai.", topic)

	if len(keywords) > 0 {
		listed := keywords
		if len(listed) > descriptionKeywordLimit {
			listed = listed[:descriptionKeywordLimit]
		}
		fmt.Fprintf(&b, " Kata kunci: %s.", strings.Join(listed, ", "))
	}

	desc := b.String()
	if textutil.Len(desc) < DescriptionMinLen {
		desc += descriptionFiller
	}
	return textutil.Truncate(desc, DescriptionMaxLen)
}
