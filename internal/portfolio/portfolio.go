// Package portfolio holds the page content: the owner's profile and the
// discoverable sections it is organized into.
package portfolio

// Section ids. These are the stable identifiers the discovery state is
// keyed by; renaming one orphans previously persisted progress.
const (
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionBookshelf  = "bookshelf"
	SectionContact    = "contact"
)

// Section is one discoverable content block.
type Section struct {
	ID     string
	Title  string
	Teaser string // shown while the section is still undiscovered
}

// Skill is one entry in the skills section, with a 0-100 level for the
// skill bar.
type Skill struct {
	Name  string
	Level int
}

// Experience is one entry in the work-history section.
type Experience struct {
	Role    string
	Company string
	Period  string
	Summary string
}

// Profile is the owner's biographical content.
type Profile struct {
	Name       string
	Tagline    string
	Location   string
	About      []string
	Skills     []Skill
	Experience []Experience
	Email      string
	GitHubURL  string
	LinkedIn   string
}
