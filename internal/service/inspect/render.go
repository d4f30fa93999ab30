package inspect

import (
	"fmt"
	"strings"

	"github.com/november7co/memberqa/internal/service/ui"
)

const (
	maxDuplicatesShown = 5
	maxConflictsShown  = 5
	snippetLen         = 80
)

// Render formats the report for a terminal.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(ui.SectionStyle.Render("Message counts"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  total raw messages:                %d\n", r.TotalRaw)
	fmt.Fprintf(&b, "  empty / blank messages:            %d\n", r.BlankTexts)
	fmt.Fprintf(&b, "  unparseable timestamps:            %d\n", r.BadTimestamps)

	b.WriteString("\n")
	b.WriteString(ui.SectionStyle.Render("Duplicate message bodies"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  distinct texts appearing more than once: %d\n", len(r.DuplicateBodies))
	for i, d := range r.DuplicateBodies {
		if i >= maxDuplicatesShown {
			break
		}
		fmt.Fprintf(&b, "  %dx  %s\n", d.Count, snippet(d.Text))
	}

	b.WriteString("\n")
	b.WriteString(ui.SectionStyle.Render("Potentially conflicting numeric facts"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  members affected: %d\n", len(r.Conflicts))
	for i, c := range r.Conflicts {
		if i >= maxConflictsShown {
			break
		}
		name := c.Member
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("  - %s: %s", name, strings.Join(c.Values, " | "))
		b.WriteString(ui.WarnStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLen {
		return s
	}
	return string(runes[:snippetLen-3]) + "..."
}
