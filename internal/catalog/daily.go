package catalog

// Daily enrichment catalogs. Words rotate one per language, puzzles one per
// difficulty tier; facts, teasers and mindfulness exercises rotate plainly.

var Words = MustNew(KindWord, []Item{
	{ID: "word-shanti", Title: "Shanti", Description: "Peace; inner stillness. Traditionally chanted three times to settle body, speech and mind.", Language: LanguageSanskrit, Category: "vocabulary", KeyConcepts: []string{"peace", "chant"}},
	{ID: "word-ananda", Title: "Ananda", Description: "Bliss; deep contentment that does not depend on circumstances.", Language: LanguageSanskrit, Category: "vocabulary", KeyConcepts: []string{"joy"}},
	{ID: "word-prana", Title: "Prana", Description: "Life breath; the vital energy carried on each inhalation.", Language: LanguageSanskrit, Category: "vocabulary", KeyConcepts: []string{"breath", "energy"}},
	{ID: "word-carino", Title: "Cariño", Description: "Tender affection; the warmth in a touch or a nickname.", Language: LanguageSpanish, Category: "vocabulary", KeyConcepts: []string{"affection"}},
	{ID: "word-luz", Title: "Luz", Description: "Light. 'Dar a luz' — to give light — is the Spanish phrase for giving birth.", Language: LanguageSpanish, Category: "vocabulary", KeyConcepts: []string{"light", "birth"}},
	{ID: "word-arrullo", Title: "Arrullo", Description: "A lullaby or cooing; the soft sound used to soothe a baby to sleep.", Language: LanguageSpanish, Category: "vocabulary", KeyConcepts: []string{"lullaby", "soothing"}},
	{ID: "word-douceur", Title: "Douceur", Description: "Softness, gentleness; sweetness of manner.", Language: LanguageFrench, Category: "vocabulary", KeyConcepts: []string{"gentleness"}},
	{ID: "word-berceuse", Title: "Berceuse", Description: "A cradle song; music written to the rhythm of rocking.", Language: LanguageFrench, Category: "vocabulary", KeyConcepts: []string{"lullaby", "music"}},
	{ID: "word-eveil", Title: "Éveil", Description: "Awakening; the gradual opening of a baby's senses.", Language: LanguageFrench, Category: "vocabulary", KeyConcepts: []string{"senses", "awakening"}},
	{ID: "word-quickening", Title: "Quickening", Description: "The first fetal movements a mother can feel, usually between weeks 16 and 25.", Language: LanguageEnglish, Category: "vocabulary", KeyConcepts: []string{"fetal movement"}},
	{ID: "word-lullaby", Title: "Lullaby", Description: "A quiet song to lull a child to sleep; from 'lull' plus 'bye'.", Language: LanguageEnglish, Category: "vocabulary", KeyConcepts: []string{"music", "sleep"}},
	{ID: "word-nesting", Title: "Nesting", Description: "The burst of energy to clean and prepare the home late in pregnancy.", Language: LanguageEnglish, Category: "vocabulary", KeyConcepts: []string{"preparation", "third trimester"}},
})

var Puzzles = MustNew(KindPuzzle, []Item{
	{ID: "puzzle-growing-count", Title: "If baby gains about 30 grams a day in the last month, how much is that in a week?", Description: "About 210 grams — roughly the weight of an apple.", Difficulty: DifficultyEasy, Category: "arithmetic"},
	{ID: "puzzle-heartbeats", Title: "A fetal heart beats about 140 times a minute. How many beats in one hour?", Description: "8,400 beats — more than twice an adult's resting count.", Difficulty: DifficultyEasy, Category: "arithmetic"},
	{ID: "puzzle-name-riddle", Title: "I grow smaller every day yet hold something growing bigger. What am I?", Description: "The space inside the womb.", Difficulty: DifficultyEasy, Category: "riddle"},
	{ID: "puzzle-trimester-logic", Title: "If week 14 starts the second trimester and week 28 starts the third, which trimester is week 27 in?", Description: "The second — the third begins only at week 28.", Difficulty: DifficultyMedium, Category: "logic"},
	{ID: "puzzle-water-weight", Title: "Amniotic fluid peaks near 800 ml around week 34. Express that as standard glasses of water.", Description: "Just over three 250 ml glasses.", Difficulty: DifficultyMedium, Category: "arithmetic"},
	{ID: "puzzle-kick-pattern", Title: "You feel 10 kicks in 40 minutes, evenly spaced. How long between kicks?", Description: "A kick roughly every 4 minutes.", Difficulty: DifficultyMedium, Category: "logic"},
	{ID: "puzzle-cells", Title: "One cell divides into two every day. Starting from one, after how many days do you pass a million cells?", Description: "Day 20 — doubling reaches 1,048,576.", Difficulty: DifficultyHard, Category: "arithmetic"},
	{ID: "puzzle-sequence", Title: "Continue the sequence: 4, 8, 12, 16, 20 — the weeks of routine scans. What comes next and why might it differ?", Description: "24 by pattern, though real scan schedules cluster around 12 and 20 weeks.", Difficulty: DifficultyHard, Category: "logic"},
	{ID: "puzzle-syllables", Title: "Rearrange the syllables 'by-lul-la' into a word every newborn knows by heart.", Description: "Lullaby.", Difficulty: DifficultyHard, Category: "riddle"},
})

var Facts = MustNew(KindFact, []Item{
	{ID: "fact-taste", Title: "Baby tastes what you eat", Description: "Flavours from the mother's diet reach the amniotic fluid, and babies swallow it daily — early training for the family menu.", Category: "development"},
	{ID: "fact-hearing", Title: "Hearing begins around week 18", Description: "By the third trimester a baby can distinguish the mother's voice from others and may calm to familiar songs.", Category: "development"},
	{ID: "fact-fingerprints", Title: "Fingerprints form by week 17", Description: "The ridges on tiny fingertips are set months before birth and never change.", Category: "development"},
	{ID: "fact-dreams", Title: "Babies may dream before birth", Description: "REM sleep appears around week 28, the same sleep stage adults dream in.", Category: "development"},
	{ID: "fact-heart-sync", Title: "Hearts can synchronise", Description: "Studies suggest a mother's slow breathing can steady her baby's heart rhythm within minutes.", Category: "bonding"},
	{ID: "fact-yawning", Title: "Yawning in the womb", Description: "Ultrasounds catch fetuses yawning from around week 24, possibly tied to brain maturation.", Category: "development"},
	{ID: "fact-light", Title: "Light reaches the womb", Description: "From about week 22 a baby turns toward a bright light held to the belly, eyes still fused shut.", Category: "development"},
	{ID: "fact-memory", Title: "Melodies are remembered", Description: "Newborns respond to tunes played often during late pregnancy, showing recognition weeks after birth.", Category: "music"},
})

var Teasers = MustNew(KindTeaser, []Item{
	{ID: "teaser-which-sense", Title: "Which sense develops first?", Description: "Touch — a fetus responds to brushes on the lips by week 8.", Category: "quiz"},
	{ID: "teaser-week-flip", Title: "When do most babies turn head-down?", Description: "Between weeks 32 and 36, readying for birth.", Category: "quiz"},
	{ID: "teaser-bones", Title: "More bones or fewer at birth?", Description: "More — about 300, many fusing into the adult 206 over childhood.", Category: "quiz"},
	{ID: "teaser-cry-accent", Title: "Do newborn cries have an accent?", Description: "Yes — cry melodies mirror the intonation of the language heard in the womb.", Category: "quiz"},
	{ID: "teaser-hiccups", Title: "What are those rhythmic belly taps?", Description: "Fetal hiccups — practice for breathing muscles, common from mid-pregnancy.", Category: "quiz"},
	{ID: "teaser-water-birth", Title: "Why don't babies inhale in the womb?", Description: "The lungs are fluid-filled; oxygen arrives through the placenta until the first breath.", Category: "quiz"},
})

var Mindfulness = MustNew(KindMindfulness, []Item{
	{ID: "mind-box-breath", Title: "Box breathing", Description: "Inhale four counts, hold four, exhale four, hold four. Four rounds, hand resting on the belly.", Category: "breathing", Difficulty: DifficultyEasy},
	{ID: "mind-body-scan", Title: "Gentle body scan", Description: "From crown to toes, notice and soften each area for one slow breath. Ten minutes, lying on the left side.", Category: "relaxation", Difficulty: DifficultyMedium},
	{ID: "mind-kick-listen", Title: "Listening for movement", Description: "Sit quietly after a meal, both hands on the belly, and simply attend to whatever movement arrives, without counting.", Category: "bonding", Difficulty: DifficultyEasy},
	{ID: "mind-loving-wish", Title: "A wish for the baby", Description: "Repeat silently: may you be healthy, may you be peaceful, may you be loved. Extend the wish to yourself.", Category: "meditation", Difficulty: DifficultyEasy},
	{ID: "mind-sound-bath", Title: "Humming sound bath", Description: "A low, sustained hum for five breaths; feel the vibration travel through the chest and belly.", Category: "sound", Difficulty: DifficultyMedium},
	{ID: "mind-open-awareness", Title: "Open awareness", Description: "Twenty minutes resting attention on whatever arises — sounds, sensations, thoughts — without following any of them.", Category: "meditation", Difficulty: DifficultyHard},
})
