package facts

// ResumeFacts is the embedded fallback list shown when the profile API
// is unreachable and no authored facts file is configured. The portfolio
// owner edits this table (or ships a facts.json) to describe themselves.
func ResumeFacts() []Fact {
	return []Fact{
		{
			Name:        "Software engineer",
			Description: "systems and tooling, mostly Go",
			Origin:      OriginResume,
			Category:    "bio",
		},
		{
			Name:        "synthdrive",
			Description: "this terminal lane-runner portfolio",
			Language:    "Go",
			Origin:      OriginResume,
			Category:    "game",
		},
		{
			Name:        "Open to interesting work",
			Details:     "remote friendly",
			Origin:      OriginResume,
			Category:    "contact",
		},
		{
			Name:        "Favorite stack",
			Description: "Go, SQL, a terminal and a pager",
			Origin:      OriginResume,
			Category:    "tool",
		},
	}
}
