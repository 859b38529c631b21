// Package bookgame implements the Bible book ordering games and the weekly
// mastery counter that goes with them.
package bookgame

// Canon is the 66-book Protestant canon in order.
var Canon = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

const olderAge = 8

// BooksPerSet returns how many books a learner orders each week.
func BooksPerSet(age int) int {
	if age >= olderAge {
		return 10
	}
	return 5
}

// MasteryRequired returns how many successful runs master a week's set.
func MasteryRequired(age int) int {
	if age >= olderAge {
		return 2
	}
	return 3
}

// Sets partitions the canon into consecutive sets of size books. The last
// set holds the remainder.
func Sets(size int) [][]string {
	if size <= 0 {
		return nil
	}
	sets := make([][]string, 0, (len(Canon)+size-1)/size)
	for start := 0; start < len(Canon); start += size {
		end := min(start+size, len(Canon))
		sets = append(sets, Canon[start:end])
	}
	return sets
}

// SetIndex returns which set a learner works on in week. The sets cycle
// once the canon is exhausted.
func SetIndex(week, age int) int {
	n := len(Sets(BooksPerSet(age)))
	if week < 1 {
		week = 1
	}
	return (week - 1) % n
}

// BooksForWeek returns a copy of the books in canonical order for week.
func BooksForWeek(week, age int) []string {
	set := Sets(BooksPerSet(age))[SetIndex(week, age)]
	out := make([]string, len(set))
	copy(out, set)
	return out
}
