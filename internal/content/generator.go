package content

import (
	"fmt"
	"strings"
)

// GeneratedLength is the number of weeks in every library after year one.
const GeneratedLength = 48

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Theme is a pair of week titles, one for each age group.
type Theme struct {
	Young string
	Old   string
}

// Stem is a verse with a progressively longer text for ages 4, 5, 6 and 7.
type Stem struct {
	Reference string
	Bands     [4]string
}

// Reference is a full verse for ages 8 and up.
type Reference struct {
	Reference string
	Text      string
}

// Seed is the raw material Generate rotates through.
type Seed struct {
	Themes     []Theme
	Stems      []Stem
	References []Reference
	Prompts    []string
}

// Generate builds a library of length weeks by rotating through the seed.
// Week i draws stems 2i and 2i+1 so the two younger variants never repeat
// within a week. The result depends only on its arguments.
func Generate(seed Seed, length int) []WeekContent {
	if length <= 0 || len(seed.Themes) == 0 || len(seed.Stems) == 0 || len(seed.References) == 0 {
		return nil
	}

	library := make([]WeekContent, 0, length)
	for i := 0; i < length; i++ {
		theme := seed.Themes[i%len(seed.Themes)]
		a := seed.Stems[(2*i)%len(seed.Stems)]
		b := seed.Stems[(2*i+1)%len(seed.Stems)]
		older := seed.References[i%len(seed.References)]

		week := WeekContent{
			Week:           i + 1,
			Month:          months[(i/4)%len(months)],
			ThemeYoung:     theme.Young,
			ThemeOld:       theme.Old,
			OlderVerse:     older.Text,
			OlderReference: older.Reference,
		}
		for band := 0; band < 4; band++ {
			week.VerseA[band] = a.Bands[band] + referenceSeparator + a.Reference
			week.VerseB[band] = b.Bands[band] + referenceSeparator + b.Reference
		}
		library = append(library, week)
	}
	return library
}

// generateDevotionals derives one devotional per generated week from its theme.
func generateDevotionals(seed Seed, library []WeekContent) []devotionalEntry {
	entries := make([]devotionalEntry, 0, len(library))
	for i, week := range library {
		prompt := "What did you learn about God this week?"
		if len(seed.Prompts) > 0 {
			prompt = seed.Prompts[i%len(seed.Prompts)]
		}
		entries = append(entries, devotionalEntry{
			Title:  week.ThemeOld,
			Body:   fmt.Sprintf("This week is about %s. Read %s together and talk about what it shows us about God.", strings.ToLower(week.ThemeYoung), week.OlderReference),
			Prompt: prompt,
		})
	}
	return entries
}

var (
	laterYears           = Generate(laterYearSeed, GeneratedLength)
	laterYearDevotionals = generateDevotionals(laterYearSeed, laterYears)
)

var laterYearSeed = Seed{
	Themes: []Theme{
		{"God Keeps His Promises", "The Faithfulness of God"},
		{"God Is Strong", "The Power of God"},
		{"God Knows Everything", "The Wisdom of God"},
		{"God Is Holy", "The Holiness of God"},
		{"Jesus Heals", "The Compassion of Christ"},
		{"Jesus Calms the Storm", "Authority Over Creation"},
		{"Jesus Feeds Many", "The Bread of Life"},
		{"Jesus Is the Vine", "Abiding in Christ"},
		{"The Holy Spirit Helps", "The Helper"},
		{"God's Family", "The Church"},
		{"Walk in Love", "Love in Action"},
		{"Work Hard", "Diligence"},
		{"Words That Help", "Guarding the Tongue"},
		{"Be Content", "Contentment"},
		{"God Is Fair", "Justice and Mercy"},
		{"Heaven Is Home", "Our Living Hope"},
	},
	Stems: []Stem{
		{"Numbers 23:19", [4]string{"God does not lie.", "God is not a man that he should lie.", "God is not a man that he should lie; he keeps his word.", "God is not a man, that he should lie. Has he said, and will he not do it?"}},
		{"Jeremiah 32:17", [4]string{"Nothing is too hard for God.", "Nothing is too hard for you, Lord.", "You made the heavens; nothing is too hard for you.", "You have made the heavens and the earth by your great power. There is nothing too hard for you."}},
		{"Psalm 147:5", [4]string{"God is great.", "Great is our Lord.", "Great is our Lord, and mighty in power.", "Great is our Lord, and mighty in power. His understanding is infinite."}},
		{"Isaiah 6:3", [4]string{"Holy, holy, holy.", "Holy, holy, holy is the Lord.", "Holy, holy, holy is the Lord of Armies!", "Holy, holy, holy, is the Lord of Armies! The whole earth is full of his glory!"}},
		{"Matthew 4:23", [4]string{"Jesus healed people.", "Jesus healed every sickness.", "Jesus went about teaching and healing every sickness.", "Jesus went about in all Galilee, teaching, preaching the Good News, and healing every disease."}},
		{"Mark 4:39", [4]string{"Peace! Be still!", "Jesus said, \"Peace! Be still!\"", "Jesus spoke to the wind: \"Peace! Be still!\"", "He awoke, rebuked the wind, and said to the sea, \"Peace! Be still!\" The wind ceased."}},
		{"John 6:35", [4]string{"Jesus is the bread of life.", "I am the bread of life.", "I am the bread of life; come to me and never hunger.", "I am the bread of life. Whoever comes to me will not be hungry."}},
		{"John 15:5", [4]string{"Jesus is the vine.", "I am the vine; you are the branches.", "I am the vine. You are the branches. Stay in me.", "I am the vine. You are the branches. He who remains in me bears much fruit."}},
		{"John 14:26", [4]string{"The Spirit teaches us.", "The Holy Spirit will teach you.", "The Holy Spirit will teach you all things.", "The Counselor, the Holy Spirit, whom the Father will send in my name, will teach you all things."}},
		{"Romans 8:14", [4]string{"We are God's children.", "God's Spirit leads his children.", "All who are led by the Spirit are children of God.", "For as many as are led by the Spirit of God, these are children of God."}},
		{"Hebrews 10:24", [4]string{"Help each other.", "Help each other do good.", "Let's help each other love and do good.", "Let's consider how to provoke one another to love and good works."}},
		{"Psalm 133:1", [4]string{"Living together is good.", "It is good to live together in peace.", "How good it is to live together in unity!", "See how good and how pleasant it is for brothers to live together in unity!"}},
		{"1 John 3:18", [4]string{"Love by doing.", "Love with what you do.", "Let's love not just in words, but in deeds.", "Let's not love in word only, or with the tongue only, but in deed and truth."}},
		{"Colossians 3:23", [4]string{"Work for the Lord.", "Work hard, as for the Lord.", "Whatever you do, work from the heart for the Lord.", "Whatever you do, work heartily, as for the Lord, and not for men."}},
		{"Proverbs 15:1", [4]string{"Gentle words help.", "A gentle answer calms anger.", "A gentle answer turns away anger.", "A gentle answer turns away wrath, but a harsh word stirs up anger."}},
		{"Ephesians 4:29", [4]string{"Say good words.", "Say words that help others.", "Say only what is good and builds others up.", "Let no corrupt speech proceed out of your mouth, but only what is good for building others up."}},
		{"Philippians 4:11", [4]string{"I am content.", "I have learned to be content.", "I have learned to be content in every situation.", "I have learned in whatever state I am, to be content in it."}},
		{"Hebrews 13:5", [4]string{"Be happy with what you have.", "Be content with what you have.", "Be content with what you have; God is with you.", "Be free from the love of money, content with such things as you have."}},
		{"Psalm 89:14", [4]string{"God is fair.", "God is fair and loving.", "Fairness and truth go before God.", "Righteousness and justice are the foundation of your throne. Loving kindness and truth go before you."}},
		{"Micah 7:18", [4]string{"God loves mercy.", "God delights in showing mercy.", "Who is like God? He delights in mercy.", "Who is a God like you, who pardons iniquity? He delights in loving kindness."}},
		{"John 14:2", [4]string{"Jesus makes a place for us.", "Jesus is making a home for us.", "In my Father's house are many rooms.", "In my Father's house are many homes. I am going to prepare a place for you."}},
		{"Revelation 21:4", [4]string{"No more tears.", "God will wipe away every tear.", "God will wipe every tear; there will be no more pain.", "He will wipe away every tear from their eyes. Death will be no more; neither will there be mourning."}},
		{"Psalm 121:2", [4]string{"My help is from God.", "My help comes from the Lord.", "My help comes from the Lord, who made heaven.", "My help comes from the Lord, who made heaven and earth."}},
		{"Psalm 145:9", [4]string{"God is good to all.", "The Lord is good to everyone.", "The Lord is good to all; he is kind to all.", "The Lord is good to all. His tender mercies are over all his works."}},
	},
	References: []Reference{
		{"Deuteronomy 7:9", "Know therefore that the Lord your God himself is God, the faithful God, who keeps covenant and loving kindness."},
		{"Ephesians 3:20", "Now to him who is able to do exceedingly abundantly above all that we ask or think, according to the power that works in us."},
		{"Romans 11:33", "Oh the depth of the riches both of the wisdom and the knowledge of God! How unsearchable are his judgments!"},
		{"1 Peter 1:16", "Because it is written, \"You shall be holy; for I am holy.\""},
		{"Matthew 9:36", "But when he saw the multitudes, he was moved with compassion for them, because they were harassed and scattered, like sheep without a shepherd."},
		{"Mark 4:41", "They were greatly afraid and said to one another, \"Who then is this, that even the wind and the sea obey him?\""},
		{"John 6:35", "I am the bread of life. Whoever comes to me will not be hungry, and whoever believes in me will never be thirsty."},
		{"John 15:5", "I am the vine. You are the branches. He who remains in me and I in him bears much fruit, for apart from me you can do nothing."},
		{"Romans 8:26", "In the same way, the Spirit also helps our weaknesses, for we don't know how to pray as we ought."},
		{"Acts 2:42", "They continued steadfastly in the apostles' teaching and fellowship, in the breaking of bread, and prayer."},
		{"1 John 3:18", "My little children, let's not love in word only, or with the tongue only, but in deed and truth."},
		{"Proverbs 14:23", "In all hard work there is profit, but the talk of the lips leads only to poverty."},
		{"James 3:10", "Out of the same mouth comes blessing and cursing. My brothers, these things ought not to be so."},
		{"1 Timothy 6:6", "But godliness with contentment is great gain."},
		{"Micah 6:8", "He has shown you, O man, what is good. What does the Lord require of you, but to act justly, to love mercy, and to walk humbly with your God?"},
		{"1 Peter 1:3", "Blessed be the God and Father of our Lord Jesus Christ, who according to his great mercy caused us to be born again to a living hope."},
		{"2 Corinthians 5:17", "Therefore if anyone is in Christ, he is a new creation. The old things have passed away. Behold, all things have become new."},
		{"Romans 12:2", "Don't be conformed to this world, but be transformed by the renewing of your mind."},
		{"Psalm 46:10", "Be still, and know that I am God. I will be exalted among the nations. I will be exalted in the earth."},
		{"Hebrews 11:1", "Now faith is assurance of things hoped for, proof of things not seen."},
	},
	Prompts: []string{
		"What did this week's verse teach you about God?",
		"How can you live out this verse tomorrow?",
		"Who could you share this verse with?",
		"What question would you like to ask God about this?",
	},
}
