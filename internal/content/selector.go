package content

import "strings"

const (
	referenceSeparator = " — "

	// YearOneLength counts the four review weeks that follow the authored ones.
	YearOneLength = 52

	minAge        = 4
	maxAge        = 12
	olderAge      = 8
	variantBStart = 3

	fallbackText      = "God is love."
	fallbackReference = "1 John 4:8"
	fallbackTheme     = "God Is Love"
)

// lookup resolves a program week to its library slot. The returned index
// addresses both the verse library and its devotional table for that year.
func lookup(week, year int) (WeekContent, int, bool) {
	if week < 1 || year < 1 {
		return WeekContent{}, 0, false
	}
	if year == 1 {
		if week > YearOneLength {
			return WeekContent{}, 0, false
		}
		idx := (week - 1) % len(yearOne)
		return yearOne[idx], idx, true
	}
	if len(laterYears) == 0 {
		return WeekContent{}, 0, false
	}
	idx := (week - 1) % len(laterYears)
	return laterYears[idx], idx, true
}

func validAge(age int) bool {
	return age >= minAge && age <= maxAge
}

// VariantForDay returns "A" for Monday and Tuesday and "B" for the rest of
// the week. Learners aged 8 and up have no variant.
func VariantForDay(age, day int) string {
	if age >= olderAge {
		return ""
	}
	if day < variantBStart {
		return "A"
	}
	return "B"
}

// SplitReference splits literal verse text on its last " — " separator.
// Text without a separator is returned whole with an empty reference.
func SplitReference(raw string) (text, reference string) {
	i := strings.LastIndex(raw, referenceSeparator)
	if i < 0 {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+len(referenceSeparator):])
}

// VerseFor returns the verse a learner of the given age memorizes on day
// (1=Monday .. 7=Sunday) of week in program year.
func VerseFor(week, age, year, day int) Verse {
	variant := ""
	if validAge(age) {
		variant = VariantForDay(age, day)
	}

	wc, _, ok := lookup(week, year)
	if !ok || !validAge(age) {
		return fallbackVerse(week, variant)
	}
	if age >= olderAge {
		return Verse{
			Text:      wc.OlderVerse,
			Reference: wc.OlderReference,
			Theme:     wc.ThemeOld,
			Week:      week,
			Source:    SourceFound,
		}
	}

	raw := wc.VerseA[age-minAge]
	if variant == "B" {
		raw = wc.VerseB[age-minAge]
	}
	text, ref := SplitReference(raw)
	return Verse{
		Text:      text,
		Reference: ref,
		Variant:   variant,
		Theme:     wc.ThemeYoung,
		Week:      week,
		Source:    SourceFound,
	}
}

// BothVersesFor returns the A and B verses of a week for learners under 8.
// Older learners have no variants and get the generic fallback pair.
func BothVersesFor(week, age, year int) (a, b Verse) {
	if age >= olderAge {
		return fallbackVerse(week, "A"), fallbackVerse(week, "B")
	}
	return VerseFor(week, age, year, 1), VerseFor(week, age, year, variantBStart)
}

// DevotionalFor returns the week's devotional, or an age-tiered template
// when the week has none.
func DevotionalFor(week, year, age int) Devotional {
	_, idx, ok := lookup(week, year)
	table := yearOneDevotionals
	if year > 1 {
		table = laterYearDevotionals
	}
	if !ok || idx >= len(table) {
		entry := fallbackDevotionalFor(age)
		return Devotional{
			Title:  entry.Title,
			Body:   entry.Body,
			Prompt: entry.Prompt,
			Week:   week,
			Source: SourceFallback,
		}
	}
	entry := table[idx]
	return Devotional{
		Title:  entry.Title,
		Body:   entry.Body,
		Prompt: entry.Prompt,
		Week:   week,
		Source: SourceFound,
	}
}

// WeekContentFor returns the raw library entry for a week.
func WeekContentFor(age, week, year int) WeekResult {
	wc, _, ok := lookup(week, year)
	if !ok || !validAge(age) {
		return WeekResult{Content: fallbackWeek(week), Source: SourceFallback}
	}
	return WeekResult{Content: wc, Source: SourceFound}
}

func fallbackVerse(week int, variant string) Verse {
	return Verse{
		Text:      fallbackText,
		Reference: fallbackReference,
		Variant:   variant,
		Theme:     fallbackTheme,
		Week:      week,
		Source:    SourceFallback,
	}
}

func fallbackWeek(week int) WeekContent {
	wc := WeekContent{
		Week:           week,
		ThemeYoung:     fallbackTheme,
		ThemeOld:       fallbackTheme,
		OlderVerse:     fallbackText,
		OlderReference: fallbackReference,
	}
	for band := range wc.VerseA {
		wc.VerseA[band] = fallbackText + referenceSeparator + fallbackReference
		wc.VerseB[band] = wc.VerseA[band]
	}
	return wc
}
