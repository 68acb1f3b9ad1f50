package content

import (
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/navigation"
)

func TestDefaultHasEverySection(t *testing.T) {
	p := Default()
	sections := p.Sections()
	if len(sections) != len(navigation.Items) {
		t.Fatalf("got %d sections, want %d", len(sections), len(navigation.Items))
	}
	for i, it := range navigation.Items {
		if sections[i] != it {
			t.Errorf("sections[%d] = %+v, want %+v", i, sections[i], it)
		}
	}
}

func TestSectionsSkipEmptyContent(t *testing.T) {
	p := Default()
	p.Projects = nil
	if p.HasSection(navigation.Projects) {
		t.Error("projects section rendered without projects")
	}
	if !p.HasSection(navigation.Contact) {
		t.Error("contact section should always be rendered")
	}
}

func TestSkillGroupFallback(t *testing.T) {
	p := Default()
	g, ok := p.SkillGroup("Backend")
	if !ok || g.Name != "Backend" {
		t.Errorf("SkillGroup(Backend) = %q, %v", g.Name, ok)
	}
	g, ok = p.SkillGroup("Underwater Basket Weaving")
	if !ok || g.Name != "Frontend" {
		t.Errorf("unknown tab should fall back to Frontend, got %q", g.Name)
	}
	if _, ok := (Page{}).SkillGroup("Frontend"); ok {
		t.Error("empty page has no skill groups")
	}
}

func TestSkillLevels(t *testing.T) {
	g := SkillGroup{Name: "x", Skills: []string{"a", "b", "c"}}
	levels := g.Levels()
	want := []int{80, 75, 70}
	for i, s := range levels {
		if s.Level != want[i] {
			t.Errorf("level[%d] = %d, want %d", i, s.Level, want[i])
		}
	}
	if SkillLevel(100) != 5 {
		t.Errorf("SkillLevel(100) = %d, want floor of 5", SkillLevel(100))
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("I'm **DEMO**.\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<strong>DEMO</strong>") {
		t.Errorf("missing emphasis in %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw HTML passed through: %q", html)
	}
}
