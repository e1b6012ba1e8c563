// Package types provides type definitions for the canonical resume model used
// throughout the resume-synth pipeline.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Resume is the canonical, typed representation of one person's resume.
// Basics is optional at the type level but a resume without it never survives
// post-processing. Section slices preserve upstream entry order.
type Resume struct {
	Basics       *Basics       `json:"basics"`
	Education    []Education   `json:"education"`
	Work         []Work        `json:"work"`
	Projects     []Project     `json:"projects"`
	Skills       []Skill       `json:"skills"`
	Publications []Publication `json:"publications"`
	Awards       []Award       `json:"awards"`
	Certificates []Certificate `json:"certificates"`
	Volunteer    []Volunteer   `json:"volunteer"`
	Languages    []Language    `json:"languages"`
	Interests    []Interest    `json:"interests"`
	References   []Reference   `json:"references"`
}

// Profile is a social or professional network presence listed under basics.
type Profile struct {
	URL      string `json:"url" validate:"required"`
	Username string `json:"username"`
	Network  string `json:"network"`
}

// Location is the address block under basics.
type Location struct {
	City        string `json:"city" validate:"required"`
	Address     string `json:"address"`
	Region      string `json:"region"`
	CountryCode string `json:"countrycode"`
	PostalCode  string `json:"postalcode"`
}

// Basics holds the identity header of a resume.
type Basics struct {
	Name     string    `json:"name" validate:"required"`
	Label    string    `json:"label"`
	Website  string    `json:"website"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Summary  string    `json:"summary"`
	URL      string    `json:"url"`
	Profiles []Profile `json:"profiles"`
	Location *Location `json:"location"`
}

// Work is one entry in the work-experience section.
type Work struct {
	Position    string     `json:"position" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	StartDate   *YearMonth `json:"startdate"`
	EndDate     *YearMonth `json:"enddate"`
	Summary     string     `json:"summary"`
	Highlights  []string   `json:"highlights"`
	URL         string     `json:"url"`
}

// Education is one entry in the education section.
type Education struct {
	Institution string     `json:"institution" validate:"required"`
	Area        string     `json:"area"`
	StudyType   string     `json:"studytype"`
	StartDate   *YearMonth `json:"startdate"`
	EndDate     *YearMonth `json:"enddate"`
	URL         string     `json:"url"`
	Score       string     `json:"score"`
}

// Project is one entry in the projects section.
type Project struct {
	Name        string     `json:"name" validate:"required"`
	StartDate   *YearMonth `json:"startdate"`
	EndDate     *YearMonth `json:"enddate"`
	Description string     `json:"description"`
	Highlights  []string   `json:"highlights"`
	URL         string     `json:"url"`
}

// Skill is one entry in the skills section.
type Skill struct {
	Name     string   `json:"name" validate:"required"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Publication is one entry in the publications section.
type Publication struct {
	Name        string     `json:"name" validate:"required"`
	Publisher   string     `json:"publisher"`
	Summary     string     `json:"summary"`
	ReleaseDate *YearMonth `json:"releasedate"`
	URL         string     `json:"url"`
}

// Award is one entry in the awards section.
type Award struct {
	Title   string     `json:"title" validate:"required"`
	Date    *YearMonth `json:"date"`
	Awarder string     `json:"awarder"`
	Summary string     `json:"summary"`
}

// Certificate is one entry in the certificates section.
type Certificate struct {
	Name   string     `json:"name" validate:"required"`
	Date   *YearMonth `json:"date"`
	URL    string     `json:"url"`
	Issuer string     `json:"issuer"`
}

// Volunteer is one entry in the volunteer section.
type Volunteer struct {
	Organization string     `json:"organization" validate:"required"`
	Position     string     `json:"position"`
	StartDate    *YearMonth `json:"startdate"`
	EndDate      *YearMonth `json:"enddate"`
	Summary      string     `json:"summary"`
	Highlights   []string   `json:"highlights"`
	URL          string     `json:"url"`
}

// Language is one entry in the languages section.
type Language struct {
	Language string `json:"language" validate:"required"`
	Fluency  string `json:"fluency"`
}

// Interest is one entry in the interests section.
type Interest struct {
	Name string `json:"name" validate:"required"`
}

// Reference is one entry in the references section.
type Reference struct {
	Name      string `json:"name" validate:"required"`
	Reference string `json:"reference"`
}

// SectionNames lists the eleven list-typed resume sections in canonical order.
var SectionNames = []string{
	"education", "work", "projects", "skills", "publications",
	"awards", "certificates", "volunteer", "languages", "interests", "references",
}

// DateKeys are the mapping keys that may carry a date in any section entry.
var DateKeys = []string{"startdate", "enddate", "date", "releasedate"}

var validate = validator.New()

// ValidateStruct runs struct-tag validation on any section entry type.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// HasSection reports whether the named section has at least one entry.
func (r *Resume) HasSection(name string) bool {
	switch name {
	case "basics":
		return r.Basics != nil
	case "education":
		return len(r.Education) > 0
	case "work":
		return len(r.Work) > 0
	case "projects":
		return len(r.Projects) > 0
	case "skills":
		return len(r.Skills) > 0
	case "publications":
		return len(r.Publications) > 0
	case "awards":
		return len(r.Awards) > 0
	case "certificates":
		return len(r.Certificates) > 0
	case "volunteer":
		return len(r.Volunteer) > 0
	case "languages":
		return len(r.Languages) > 0
	case "interests":
		return len(r.Interests) > 0
	case "references":
		return len(r.References) > 0
	default:
		return false
	}
}
