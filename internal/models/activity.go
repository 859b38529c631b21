package models

// ActivityKind identifies a learning activity on the daily page
type ActivityKind string

const (
	ActivityVerseA          ActivityKind = "verse_a"
	ActivityVerseB          ActivityKind = "verse_b"
	ActivityTodayVerse      ActivityKind = "today_verse"
	ActivityQuiz            ActivityKind = "quiz"
	ActivityWriting         ActivityKind = "writing"
	ActivityBibleBooks      ActivityKind = "bible_books"
	ActivityBookArrange     ActivityKind = "book_arrange"
	ActivityNightPrayer     ActivityKind = "night_prayer"
	ActivityNightReflection ActivityKind = "night_reflection"
)

// AllActivityKinds lists every activity kind
var AllActivityKinds = []ActivityKind{
	ActivityVerseA,
	ActivityVerseB,
	ActivityTodayVerse,
	ActivityQuiz,
	ActivityWriting,
	ActivityBibleBooks,
	ActivityBookArrange,
	ActivityNightPrayer,
	ActivityNightReflection,
}

// ParseActivityKind validates a kind read from a request or a database row
func ParseActivityKind(s string) (ActivityKind, bool) {
	for _, k := range AllActivityKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Variant distinguishes the two verses the younger band learns each week
type Variant string

const (
	VariantNone Variant = ""
	VariantA    Variant = "A"
	VariantB    Variant = "B"
)

// CompletionKind is the namespace used for completion records. Both verse
// activities share the "verse" kind and are told apart by variant.
type CompletionKind string

const (
	CompletionVerse      CompletionKind = "verse"
	CompletionDevotional CompletionKind = "devotional"
	CompletionQuiz       CompletionKind = "quiz"
	CompletionWriting    CompletionKind = "writing"
	CompletionPrayer     CompletionKind = "prayer"
	CompletionBookGame   CompletionKind = "book_game"
)

// CompletionKey identifies one completed activity. It is a comparable value
// used directly as a map key.
type CompletionKey struct {
	ProgramYear int
	Week        int
	Kind        CompletionKind
	Variant     Variant
}

// CompletionFor maps an activity on the page to the record that marks it done
func CompletionFor(kind ActivityKind) (CompletionKind, Variant) {
	switch kind {
	case ActivityVerseA:
		return CompletionVerse, VariantA
	case ActivityVerseB:
		return CompletionVerse, VariantB
	case ActivityTodayVerse:
		return CompletionDevotional, VariantNone
	case ActivityQuiz:
		return CompletionQuiz, VariantNone
	case ActivityWriting:
		return CompletionWriting, VariantNone
	case ActivityNightPrayer, ActivityNightReflection:
		return CompletionPrayer, VariantNone
	default:
		return CompletionBookGame, VariantNone
	}
}
