// Package content resolves the verse, theme and devotional text a learner
// sees for a given program year, week, age and day. Lookups never fail: a
// miss returns generic fallback text marked with SourceFallback.
package content

// Source tells callers whether a result came from a library or the fallback
type Source string

const (
	SourceFound    Source = "found"
	SourceFallback Source = "fallback"
)

// WeekContent is one week of a content library. VerseA and VerseB hold the
// literal text for ages 4, 5, 6 and 7, each ending in " — Reference".
type WeekContent struct {
	Week           int
	Month          string
	ThemeYoung     string
	ThemeOld       string
	VerseA         [4]string
	VerseB         [4]string
	OlderVerse     string
	OlderReference string
}

// Verse is the text a learner memorizes
type Verse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Variant   string `json:"variant,omitempty"`
	Theme     string `json:"theme"`
	Week      int    `json:"week"`
	Source    Source `json:"source"`
}

// Devotional is the short reading paired with a week
type Devotional struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Prompt string `json:"prompt"`
	Week   int    `json:"week"`
	Source Source `json:"source"`
}

// WeekResult wraps a week lookup with its source
type WeekResult struct {
	Content WeekContent
	Source  Source
}

type devotionalEntry struct {
	Title  string
	Body   string
	Prompt string
}
