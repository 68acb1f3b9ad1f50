// Package content holds the copy and data arrays rendered on the portfolio
// page.
package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/portfolio/internal/navigation"
)

type Profile struct {
	Name       string
	Tagline    string
	Headline   string
	Intro      string
	Email      string
	Phone      string
	LinkedIn   string
	GitHub     string
	Location   string
	ResumePath string
}

type Highlight struct {
	Title   string
	Summary string
}

type Milestone struct {
	Period string
	Detail string
}

// SkillGroup is one tab of the skills section.
type SkillGroup struct {
	Name   string
	Skills []string
}

// Skill is a skill with its display level in percent.
type Skill struct {
	Name  string
	Level int
}

type Role struct {
	Title    string
	Company  string
	Duration string
	Bullets  []string
}

type Project struct {
	Title   string
	Stack   string
	CodeURL string
	DemoURL string
}

type Degree struct {
	Title  string
	Period string
	Grade  string
}

// Page is everything shown on the portfolio. About and AI are Markdown.
type Page struct {
	Profile        Profile
	SceneURL       string
	About          string
	Highlights     []Highlight
	Timeline       []Milestone
	SkillGroups    []SkillGroup
	Roles          []Role
	Projects       []Project
	Degrees        []Degree
	Certifications []string
	AI             string
	AIPoints       []string
	ContactIntro   string
}

// SkillLevel is the bar width for the i-th skill of a group.
func SkillLevel(i int) int {
	level := 80 - i*5
	if level < 5 {
		level = 5
	}
	return level
}

// SkillGroup returns the group called name, or the first group when there
// is none by that name.
func (p Page) SkillGroup(name string) (SkillGroup, bool) {
	for _, g := range p.SkillGroups {
		if g.Name == name {
			return g, true
		}
	}
	if len(p.SkillGroups) == 0 {
		return SkillGroup{}, false
	}
	return p.SkillGroups[0], true
}

// Levels lists the group's skills with their bar widths.
func (g SkillGroup) Levels() []Skill {
	out := make([]Skill, len(g.Skills))
	for i, s := range g.Skills {
		out[i] = Skill{Name: s, Level: SkillLevel(i)}
	}
	return out
}

// Sections returns the menu entries whose section is rendered, in page
// order. Sections without content are left off the page.
func (p Page) Sections() []navigation.Item {
	present := map[navigation.Target]bool{
		navigation.Home:       true,
		navigation.About:      p.About != "" || len(p.Highlights) > 0 || len(p.Timeline) > 0,
		navigation.Skills:     len(p.SkillGroups) > 0,
		navigation.Experience: len(p.Roles) > 0,
		navigation.Projects:   len(p.Projects) > 0,
		navigation.Education:  len(p.Degrees) > 0 || len(p.Certifications) > 0,
		navigation.AI:         p.AI != "" || len(p.AIPoints) > 0,
		navigation.Contact:    true,
	}
	var out []navigation.Item
	for _, it := range navigation.Items {
		if present[it.Target] {
			out = append(out, it)
		}
	}
	return out
}

// HasSection reports whether the page renders the section for t.
func (p Page) HasSection(t navigation.Target) bool {
	for _, it := range p.Sections() {
		if it.Target == t {
			return true
		}
	}
	return false
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts src to HTML. Raw HTML in src is not passed
// through.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
