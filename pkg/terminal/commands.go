package terminal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tahaos/pkg/portfolio"
)

// DefaultCommands returns the built-in registry entries. uptime feeds
// neofetch; nil reports zero.
func DefaultCommands(catalog portfolio.Catalog, uptime func() time.Duration) []Command {
	if uptime == nil {
		uptime = func() time.Duration { return 0 }
	}
	return []Command{
		{
			Name:        "help",
			Description: "List all available commands",
			Execute:     func([]string) string { return helpText },
		},
		{
			Name:        "about",
			Description: "Display personal info",
			Aliases:     []string{"whoami"},
			Execute:     func([]string) string { return aboutText(catalog.Profile) },
		},
		{
			Name:        "projects",
			Description: "List all projects",
			Aliases:     []string{"ls projects", "ls"},
			Execute:     func(args []string) string { return projectsText(catalog, args) },
		},
		{
			Name:        "skills",
			Description: "Show skill categories",
			Execute:     func([]string) string { return skillsText(catalog.Skills) },
		},
		{
			Name:        "contact",
			Description: "Show contact info",
			Execute:     func([]string) string { return contactText(catalog.Profile) },
		},
		{
			Name:        "neofetch",
			Description: "System info (Easter egg)",
			Execute:     func([]string) string { return neofetchText(catalog.Profile, uptime()) },
		},
	}
}

var helpText = strings.Join([]string{
	"Available commands:",
	"",
	"  help          — Show this help message",
	"  about         — Display personal info",
	"  whoami        — Alias for about",
	"  projects      — List all projects",
	"  skills        — Show skill categories",
	"  contact       — Show contact info",
	"  neofetch      — System info (Easter egg)",
	"  cat <project> — Show project details",
	"  theme [d|l]   — Switch theme (dark/light)",
	"  lang [en|fr]  — Switch language",
	"  clear         — Clear the terminal",
	"  sudo hire-me  — ???",
}, "\n")

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func aboutText(p portfolio.Profile) string {
	rows := []string{
		p.FullName,
		p.Role.EN,
		"",
		"📧 " + p.Email,
		"📍 " + p.Location.EN,
		"🔗 " + p.GitHub,
	}

	width := 0
	for _, r := range rows {
		width = max(width, ansi.StringWidth(r))
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "┌"+strings.Repeat("─", width+4)+"┐")
	for _, r := range rows {
		lines = append(lines, "│  "+padRight(r, width)+"  │")
	}
	lines = append(lines, "└"+strings.Repeat("─", width+4)+"┘")
	return strings.Join(lines, "\n")
}

func projectsText(catalog portfolio.Catalog, args []string) string {
	if len(args) > 0 && args[0] != "projects" {
		p, ok := catalog.FindProject(strings.Join(args, " "))
		if !ok {
			return `Project "` + strings.Join(args, " ") + `" not found. Type 'projects' to see all.`
		}
		return joinNonEmpty(
			"📁 "+p.Title,
			indent(p.Description.EN),
			"   Tech: "+strings.Join(p.TechStack, ", "),
			labelled("   GitHub: ", p.GitHubURL),
			labelled("   Live: ", p.LiveURL),
		)
	}

	lines := []string{"Projects:", ""}
	for _, p := range catalog.Projects {
		lines = append(lines, "  📁 "+padRight(p.ID, 20)+" "+p.Title)
	}
	lines = append(lines, "", `Use "cat <project-id>" for details`)
	return strings.Join(lines, "\n")
}

// projectDetail is the block printed by cat.
func projectDetail(p portfolio.Project) string {
	return joinNonEmpty(
		"📁 "+p.Title,
		strings.Repeat("─", 40),
		p.Description.EN,
		"Tech: "+strings.Join(p.TechStack, ", "),
		labelled("GitHub: ", p.GitHubURL),
		labelled("Live: ", p.LiveURL),
	)
}

func progressBar(level, width int) string {
	filled := int(math.Round(float64(level) / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), level)
}

func skillsText(categories []portfolio.SkillCategory) string {
	sections := []string{"My Skills:"}
	for _, cat := range categories {
		lines := []string{"\n─── " + strings.ToUpper(cat.ID) + " ───"}
		for _, s := range cat.Skills {
			lines = append(lines, "  "+padRight(s.Name, 18)+" "+progressBar(s.Level, 20))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n")
}

func contactText(p portfolio.Profile) string {
	return strings.Join([]string{
		"Get in touch:",
		"",
		"  📧 Email:    " + p.Email,
		"  🐙 GitHub:   " + p.GitHub,
		"  💼 LinkedIn: " + p.LinkedIn,
	}, "\n")
}

func neofetchText(p portfolio.Profile, uptime time.Duration) string {
	secs := int(uptime / time.Second)
	return strings.Join([]string{
		"        ████████████        ",
		"      ██            ██      ",
		"    ██   ██      ██   ██    ",
		"    ██   ██      ██   ██      visitor@tahaos",
		"    ██                ██      ─────────────────",
		"    ██    ████████    ██      OS:      TahaOS v1.0.0",
		"      ██  ████████  ██        Host:    Go Terminal",
		fmt.Sprintf("      ██            ██        Uptime:  %dm %ds", secs/60, secs%60),
		"        ████████████          Shell:   tahaOS-terminal",
		"                              User:    " + p.FullName,
		"    ████████████████████      Stack:   Go, cobra, lipgloss",
		"                              Theme:   Glass Morphism",
		"  ██████████████████████████  Icons:   Custom SVG",
		"",
		"  ███ ███ ███ ███ ███ ███    ",
	}, "\n")
}

const hireMeText = `
  🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉

    CONGRATULATIONS!
    You have unlocked: HIRE MODE

    Sending resume to all recruiters...
    Just kidding! But thanks for the interest 😄

    Feel free to reach out:
    → Type 'contact' for my details

  🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉🎉
`

func joinNonEmpty(lines ...string) string {
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	return "   " + s
}
