package catalog

// Stories is the lesson library: one item per topic lesson. These back the
// search, related-topics and exercise-progress features.
var Stories = MustNew(KindStory, []Item{
	{
		ID:          "first-flutter",
		Title:       "The First Flutter",
		Description: "How early fetal movements begin, what quickening feels like, and why those first flutters matter for bonding.",
		KeyConcepts: []string{"fetal movement", "quickening", "bonding", "second trimester"},
		Analogies:   []string{"butterfly wings brushing from the inside", "popcorn popping softly"},
		Category:    "development",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "loving-kindness",
		Title:       "Loving Kindness",
		Description: "A guided practice of metta meditation adapted for pregnancy, directing warmth toward yourself and your baby.",
		KeyConcepts: []string{"meditation", "metta", "calm", "emotional bonding"},
		Analogies:   []string{"sunlight warming a closed bud", "unconditional love flowing like a quiet river"},
		Category:    "mindfulness",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "songs-through-the-wall",
		Title:       "Songs Through the Wall",
		Description: "What babies hear in the womb, how the mother's voice carries, and simple ways to share music before birth.",
		KeyConcepts: []string{"hearing", "music", "mother's voice", "third trimester"},
		Analogies:   []string{"listening to a concert from the next room"},
		Category:    "music",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "plate-for-two",
		Title:       "A Plate for Two",
		Description: "Building balanced pregnancy meals: folate, iron, calcium and the foods that carry them.",
		KeyConcepts: []string{"nutrition", "folate", "iron", "meal planning"},
		Analogies:   []string{"laying bricks for a house being built"},
		Category:    "nutrition",
		Difficulty:  DifficultyMedium,
	},
	{
		ID:          "breath-as-anchor",
		Title:       "Breath as Anchor",
		Description: "Slow diaphragmatic breathing for labour preparation and everyday calm, with counts to practise daily.",
		KeyConcepts: []string{"breathing", "calm", "labour preparation", "stress relief"},
		Analogies:   []string{"an anchor steadying a boat in swell"},
		Category:    "mindfulness",
		Difficulty:  DifficultyMedium,
	},
	{
		ID:          "brain-under-construction",
		Title:       "A Brain Under Construction",
		Description: "Neural development week by week: how neurons form, migrate and wire themselves before birth.",
		KeyConcepts: []string{"neural development", "neurons", "brain", "milestones"},
		Analogies:   []string{"a city laying roads before the houses arrive"},
		Category:    "development",
		Difficulty:  DifficultyHard,
	},
	{
		ID:          "counting-kicks",
		Title:       "Counting Kicks",
		Description: "Why kick counting matters in the third trimester, how to do a session, and what patterns to watch for.",
		KeyConcepts: []string{"kick counting", "fetal movement", "third trimester", "monitoring"},
		Analogies:   []string{"taking attendance for one very small student"},
		Category:    "development",
		Difficulty:  DifficultyMedium,
	},
	{
		ID:          "garden-of-sleep",
		Title:       "The Garden of Sleep",
		Description: "Sleep positions, winding down rituals, and how rest supports both mother and baby.",
		KeyConcepts: []string{"sleep", "rest", "left side", "routine"},
		Analogies:   []string{"a garden closing its flowers at dusk"},
		Category:    "wellness",
		Difficulty:  DifficultyEasy,
	},
	{
		ID:          "words-before-birth",
		Title:       "Words Before Birth",
		Description: "Talking and reading to your baby: language exposure in the womb and the rhythm newborns remember.",
		KeyConcepts: []string{"language", "reading aloud", "mother's voice", "bonding"},
		Analogies:   []string{"planting seeds that sprout after the rain"},
		Category:    "bonding",
		Difficulty:  DifficultyMedium,
	},
	{
		ID:          "quiet-mind-strong-heart",
		Title:       "Quiet Mind, Strong Heart",
		Description: "Managing worry in pregnancy: naming feelings, body scans, and when to reach out for support.",
		KeyConcepts: []string{"anxiety", "body scan", "emotional health", "support"},
		Analogies:   []string{"watching storm clouds pass without chasing them"},
		Category:    "mindfulness",
		Difficulty:  DifficultyHard,
	},
})
