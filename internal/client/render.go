package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-task-keeper/models"
)

const timeLayout = "2006-01-02 15:04"

// styles are bound to the writer's renderer, so colors are dropped when
// output is not a terminal.
type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	label  lipgloss.Style
	faint  lipgloss.Style
	status map[models.TaskStatus]lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		label:  r.NewStyle().Bold(true),
		faint:  r.NewStyle().Faint(true),
		status: map[models.TaskStatus]lipgloss.Style{
			models.StatusPending:    r.NewStyle().Foreground(lipgloss.Color("3")),
			models.StatusInProgress: r.NewStyle().Foreground(lipgloss.Color("4")),
			models.StatusCompleted:  r.NewStyle().Foreground(lipgloss.Color("2")),
		},
	}
}

func (s styles) statusText(status models.TaskStatus) string {
	style, ok := s.status[status]
	if !ok {
		return string(status)
	}
	return style.Render(string(status))
}

func renderTaskList(w io.Writer, page models.TaskListResponse) error {
	s := newStyles(w)

	if len(page.Tasks) == 0 {
		_, err := fmt.Fprintln(w, s.faint.Render("No tasks found"))
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "TITLE", "STATUS", "CREATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})

	for _, task := range page.Tasks {
		t.Row(task.ID, task.Title, s.statusText(task.Status), formatTime(task.CreatedAt))
	}

	p := page.Pagination
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(),
		s.faint.Render(fmt.Sprintf("Page %d of %d, %d tasks total", p.Page, max(p.TotalPages, 1), p.Total)))
	return err
}

func renderTask(w io.Writer, task models.Task) error {
	s := newStyles(w)

	description := task.Description
	if description == "" {
		description = s.faint.Render("(none)")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("ID:         "), task.ID)
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Title:      "), task.Title)
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Status:     "), s.statusText(task.Status))
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Created:    "), formatTime(task.CreatedAt))
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Description:"), description)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderUser(w io.Writer, user models.AuthenticatedUser) error {
	s := newStyles(w)

	_, err := fmt.Fprintf(w, "%s %d\n%s %s\n%s %s\n",
		s.label.Render("ID:   "), user.ID,
		s.label.Render("Name: "), user.Name,
		s.label.Render("Email:"), user.Email,
	)
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return models.BuildInfoUnknown
	}
	return t.Local().Format(timeLayout)
}
