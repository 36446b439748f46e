// Package portfolio contains the static profile, project and skill records
// shown by the desktop apps and the terminal.
package portfolio

import "strings"

// Text is a string available in English and French.
type Text struct {
	EN string `json:"en" yaml:"en"`
	FR string `json:"fr" yaml:"fr"`
}

// In returns the text for a language code, falling back to English.
func (t Text) In(lang string) string {
	if lang == "fr" && t.FR != "" {
		return t.FR
	}
	return t.EN
}

// Profile is the portfolio owner's personal information.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	FullName string `json:"full_name" yaml:"full_name"`
	Role     Text   `json:"role" yaml:"role"`
	Email    string `json:"email" yaml:"email"`
	GitHub   string `json:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Location Text   `json:"location" yaml:"location"`
	Avatar   string `json:"avatar" yaml:"avatar"`
}

// Project is one portfolio project.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description Text     `json:"description" yaml:"description"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	GitHubURL   string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	ID       string  `json:"id" yaml:"id"`
	TitleKey string  `json:"title_key" yaml:"title_key"`
	Skills   []Skill `json:"skills" yaml:"skills"`
}

// Certificate is a certification or attestation.
type Certificate struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	Date        string `json:"date" yaml:"date"`
	Description Text   `json:"description" yaml:"description"`
	Badge       string `json:"badge,omitempty" yaml:"badge,omitempty"`
	File        string `json:"file,omitempty" yaml:"file,omitempty"`
	VerifyURL   string `json:"verify_url,omitempty" yaml:"verify_url,omitempty"`
}

// Education is one degree or diploma.
type Education struct {
	ID       string `json:"id" yaml:"id"`
	School   Text   `json:"school" yaml:"school"`
	Degree   Text   `json:"degree" yaml:"degree"`
	Period   string `json:"period" yaml:"period"`
	Location string `json:"location" yaml:"location"`
	Logo     string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Experience is one job, internship or seasonal contract.
type Experience struct {
	ID          string `json:"id" yaml:"id"`
	Role        Text   `json:"role" yaml:"role"`
	Company     string `json:"company" yaml:"company"`
	Type        Text   `json:"type" yaml:"type"`
	Period      string `json:"period" yaml:"period"`
	Location    string `json:"location" yaml:"location"`
	Description Text   `json:"description" yaml:"description"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Catalog bundles the records the apps and the terminal read.
type Catalog struct {
	Profile      Profile
	Projects     []Project
	Skills       []SkillCategory
	Certificates []Certificate
	Education    []Education
	// Experience holds professional roles; OtherExperience holds student
	// jobs and seasonal work.
	Experience      []Experience
	OtherExperience []Experience
}

// FindProject looks up a project whose id or title equals name,
// ignoring case.
func (c Catalog) FindProject(name string) (Project, bool) {
	name = strings.ToLower(name)
	for _, p := range c.Projects {
		if strings.ToLower(p.ID) == name || strings.ToLower(p.Title) == name {
			return p, true
		}
	}
	return Project{}, false
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Profile:         defaultProfile,
		Projects:        defaultProjects,
		Skills:          defaultSkills,
		Certificates:    defaultCertificates,
		Education:       defaultEducation,
		Experience:      defaultExperience,
		OtherExperience: defaultOtherExperience,
	}
}
