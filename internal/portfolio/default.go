package portfolio

// DefaultSections returns the page's discoverable sections in display
// order.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionAbout, Title: "About Me", Teaser: "Who is behind all this?"},
		{ID: SectionSkills, Title: "Skills", Teaser: "Languages, tools, and trades."},
		{ID: SectionExperience, Title: "Experience", Teaser: "Where I have worked and what I broke."},
		{ID: SectionProjects, Title: "Projects", Teaser: "Things I build in the open."},
		{ID: SectionBookshelf, Title: "Bookshelf", Teaser: "What I am reading."},
		{ID: SectionContact, Title: "Contact", Teaser: "Ways to reach me."},
	}
}

// SectionIDs returns the ids of sections, preserving order.
func SectionIDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

// DefaultProfile returns the built-in portfolio content.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Iggy de Villiers",
		Tagline:  "Software engineer building distributed systems",
		Location: "Amsterdam, NL",
		About: []string{
			"Backend engineer with a soft spot for distributed storage,",
			"peer-to-peer networks, and tools that stay out of the way.",
			"Most at home somewhere between a whiteboard and a terminal.",
		},
		Skills: []Skill{
			{Name: "Go", Level: 90},
			{Name: "Java", Level: 85},
			{Name: "Kubernetes", Level: 80},
			{Name: "Distributed Systems", Level: 85},
			{Name: "PostgreSQL", Level: 75},
			{Name: "AWS", Level: 70},
		},
		Experience: []Experience{
			{
				Role:    "Senior Software Engineer",
				Company: "Adyen",
				Period:  "2022 - present",
				Summary: "Payments platform services; throughput, reliability, and the long tail of edge cases.",
			},
			{
				Role:    "Software Engineer",
				Company: "ING",
				Period:  "2019 - 2022",
				Summary: "Core banking APIs and the migration off a mainframe nobody wanted to touch.",
			},
			{
				Role:    "Graduate Engineer",
				Company: "Entersekt",
				Period:  "2017 - 2019",
				Summary: "Mobile authentication backends and far too much certificate plumbing.",
			},
		},
		Email:     "hello@iggydv.dev",
		GitHubURL: "https://github.com/iggydv",
		LinkedIn:  "https://www.linkedin.com/in/iggydv",
	}
}
