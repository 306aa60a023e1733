package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/JheyDev/Kanban/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const timestampLayout = "02/01/06 03:04 PM"

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	highlightedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("212"))
	columnTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true)
	completedStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	draggingStyle    = lipgloss.NewStyle().Faint(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusColors     = map[model.Status]lipgloss.Color{
		model.StatusBacklog:          lipgloss.Color("250"),
		model.StatusAnalysis:         lipgloss.Color("75"),
		model.StatusDevelopment:      lipgloss.Color("214"),
		model.StatusTesting:          lipgloss.Color("141"),
		model.StatusAwaitingApproval: lipgloss.Color("203"),
		model.StatusDone:             lipgloss.Color("78"),
	}
)

// FormatTimestamp renders t as dd/mm/yy hh:mm AM/PM, or fallback when nil.
func FormatTimestamp(t *time.Time, fallback string) string {
	if t == nil || t.IsZero() {
		return fallback
	}
	return t.Local().Format(timestampLayout)
}

// Text renders the columns side by side, each columnWidth cells wide.
func Text(s Snapshot, columnWidth int) string {
	rendered := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		rendered = append(rendered, renderColumn(col, columnWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col ColumnView, width int) string {
	style := columnStyle
	if col.Highlighted {
		style = highlightedColumnStyle
	}
	if c, ok := statusColors[col.Status]; ok && !col.Highlighted {
		style = style.BorderForeground(c)
	}

	lines := []string{columnTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Cards)))}
	for _, card := range col.Cards {
		lines = append(lines, "", renderCard(card))
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func renderCard(card CardView) string {
	title := cardTitleStyle.Render(card.Title)
	if card.Completed {
		title = completedStyle.Render(card.Title)
	}
	body := strings.Join([]string{
		fmt.Sprintf("%s %s", mutedStyle.Render(card.TaskID), title),
		fmt.Sprintf("%s · %s", card.Type.Text, card.Urgency.Text),
		"🧑‍💻 " + card.Responsible,
		"📅 Due: " + FormatTimestamp(card.EstimatedDue, "Not defined"),
	}, "\n")
	if card.Dragging {
		return draggingStyle.Render(body)
	}
	return body
}

// DetailsText renders the open detail view and its comments, or an empty
// string when no detail view is open.
func DetailsText(s Snapshot) string {
	d := s.Details
	if d == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", cardTitleStyle.Render(d.Title))
	fmt.Fprintf(&b, "%s\n\n", d.Description)
	rows := [][2]string{
		{"Type", d.Type},
		{"Urgency", d.Urgency},
		{"Status", d.Status},
		{"Responsible", d.Responsible},
		{"Reporter", d.Reporter},
		{"Observation", d.Observation},
		{"Due", FormatTimestamp(d.EstimatedDue, "Not defined")},
		{"Created", FormatTimestamp(&d.CreationDate, "Not defined")},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%-12s", r[0]+":")), r[1])
	}

	b.WriteString("\n" + columnTitleStyle.Render("Comments") + "\n")
	if len(s.Comments) == 0 {
		b.WriteString(mutedStyle.Render("No comments yet") + "\n")
	}
	for _, c := range s.Comments {
		author := c.Author
		if author == "" {
			author = "Unknown"
		}
		ts := c.Timestamp
		fmt.Fprintf(&b, "%s: %s %s\n", cardTitleStyle.Render(author), c.Text, mutedStyle.Render(FormatTimestamp(&ts, "")))
	}
	return b.String()
}
