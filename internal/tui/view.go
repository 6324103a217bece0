package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/homekeeper/internal/calculator"
	"github.com/mmynk/homekeeper/internal/config"
	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/views"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	formStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	levelStyles = map[notify.Level]lipgloss.Style{
		notify.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		notify.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		notify.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	dateStyles = map[calculator.DateStatus]lipgloss.Style{
		calculator.StatusOverdue: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		calculator.StatusUrgent:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		calculator.StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		calculator.StatusOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func (m Model) View() string {
	var b strings.Builder

	switch m.router.Screen() {
	case views.ScreenCategory:
		b.WriteString(m.renderCategory())
	case views.ScreenGrocery:
		b.WriteString(m.renderGroceries())
	case views.ScreenCars:
		b.WriteString(m.renderCars())
	default:
		b.WriteString(m.renderDashboard())
	}

	if m.form != nil {
		b.WriteString("\n")
		b.WriteString(m.renderForm())
	}

	b.WriteString("\n\n")
	b.WriteString(levelStyles[m.statusLevel].Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.router.Screen(), m.keys)))
	return b.String()
}

func (m Model) renderDashboard() string {
	var b strings.Builder
	o := m.overview

	b.WriteString(titleStyle.Render("Homekeeper"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Overall progress: %d%% (%d/%d tasks)\n", o.Totals.Percent(), o.Totals.Completed, o.Totals.Tasks)
	fmt.Fprintf(&b, "Groceries: %d pending, %d bought, %d high priority\n", o.Groceries.Pending, o.Groceries.Bought, o.Groceries.HighPriority)
	if o.CarAlerts > 0 {
		b.WriteString(dateStyles[calculator.StatusUrgent].Render(fmt.Sprintf("%d car(s) need attention", o.CarAlerts)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Areas"))
	b.WriteString("\n")
	if len(o.Categories) == 0 {
		b.WriteString(dimStyle.Render("No areas yet."))
		b.WriteString("\n")
	}
	for i, p := range o.Categories {
		fmt.Fprintf(&b, "%s %-12s %3d%%  %d/%d  %s\n",
			m.cursorMark(i), p.Category.Name, p.Percent,
			p.Category.CompletedCount, p.Category.TaskCount,
			dimStyle.Render(p.Category.Description))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Family"))
	b.WriteString("\n")
	for _, member := range o.Leaderboard {
		fmt.Fprintf(&b, "  [%s] %-8s %d pts\n", member.Avatar, member.Name, member.Points)
	}
	return b.String()
}

func (m Model) renderCategory() string {
	var b strings.Builder
	s := m.taskStats

	b.WriteString(titleStyle.Render(m.router.Category()))
	fmt.Fprintf(&b, "  %d%% complete, %d pending, %d need attention\n", s.Percent(), s.Pending, s.NeedsAttention)
	b.WriteString(renderTabs(views.TaskTabs, m.taskTab))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("No tasks here."))
		return b.String()
	}
	for i, t := range m.tasks {
		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}
		flag := " "
		if t.NeedsAttention {
			flag = "!"
		}
		line := fmt.Sprintf("%s %s %s %-24s %-6s %3dp  %s", m.cursorMark(i), checkbox, flag,
			t.Name, t.Priority, t.Points, strings.Join(t.AssignedTo, ", "))
		if t.DueDate != nil {
			line += "  due " + t.DueDate.Format("2006-01-02")
		}
		if t.Completed {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGroceries() string {
	var b strings.Builder
	s := m.groceryStats

	b.WriteString(titleStyle.Render("Shopping list"))
	fmt.Fprintf(&b, "  %d pending, %d bought, %d high priority\n", s.Pending, s.Bought, s.HighPriority)
	b.WriteString(renderTabs(views.GroceryTabs, m.groceryTab))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(dimStyle.Render("Nothing on the list."))
		return b.String()
	}
	for i, item := range m.items {
		checkbox := "[ ]"
		switch {
		case item.Bought:
			checkbox = "[x]"
		case m.app.Groceries.IsSelected(item.ID):
			checkbox = "[*]"
		}
		line := fmt.Sprintf("%s %s %-16s %-10s %-9s %-4s %s", m.cursorMark(i), checkbox,
			item.Name, item.Quantity, item.Category, item.Priority, item.AddedBy)
		if item.Bought {
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCars() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cars"))
	b.WriteString("\n\n")

	if len(m.cars) == 0 {
		b.WriteString(dimStyle.Render("No cars yet."))
		return b.String()
	}
	for i, s := range m.cars {
		fmt.Fprintf(&b, "%s %-16s %-10s %-6s fuel %3d%%\n", m.cursorMark(i), s.Car.Name, s.Car.Plate, s.Car.Owner, s.Car.FuelLevel)
		fmt.Fprintf(&b, "    service    %s\n", renderDate(s.ServiceStatus, s.Car.NextService.IsZero(), s.DaysToService))
		fmt.Fprintf(&b, "    inspection %s\n", renderDate(s.InspectionStatus, s.Car.NextInspection.IsZero(), s.DaysToInspection))
		if s.LowFuel {
			b.WriteString("    " + dateStyles[calculator.StatusOverdue].Render("low fuel") + "\n")
		}
	}
	return b.String()
}

func (m Model) renderForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(headerStyle.Render(f.title))
	b.WriteString("\n")
	for i, fd := range f.fields {
		prefix := " "
		value := fd.value
		if i == f.index {
			prefix = ">"
			value = m.input.View()
		} else if strings.TrimSpace(value) == "" {
			value = dimStyle.Render("(empty)")
		}
		fmt.Fprintf(&b, "%s %-30s : %s\n", prefix, fd.label, value)
	}
	return formStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDate(status calculator.DateStatus, unset bool, days int) string {
	if unset {
		return dimStyle.Render("not scheduled")
	}
	var text string
	switch {
	case days < 0:
		text = fmt.Sprintf("%s (%d days ago)", status, -days)
	case days == 0:
		text = fmt.Sprintf("%s (today)", status)
	default:
		text = fmt.Sprintf("%s (in %d days)", status, days)
	}
	return dateStyles[status].Render(text)
}

func renderTabs[T ~string](tabs []T, current T) string {
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab == current {
			parts[i] = headerStyle.Render("[" + string(tab) + "]")
		} else {
			parts[i] = dimStyle.Render(string(tab))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) cursorMark(i int) string {
	if i == m.cursor && m.form == nil {
		return ">"
	}
	return " "
}

func renderHelp(screen views.Screen, k config.Keymap) string {
	switch screen {
	case views.ScreenCategory:
		return fmt.Sprintf("%s/%s move • %s tab • %s toggle • %s attention • %s add • %s edit • %s delete • %s assign • %s back",
			k.Up, k.Down, k.NextTab, keyName(k.Toggle), k.Attention, k.Add, k.Edit, k.Delete, k.Assign, k.Back)
	case views.ScreenGrocery:
		return fmt.Sprintf("%s/%s move • %s tab • %s bought • %s select • %s mark selected • %s clear bought • %s add • %s back",
			k.Up, k.Down, k.NextTab, keyName(k.Toggle), k.Select, k.MarkAll, k.Clear, k.Add, k.Back)
	case views.ScreenCars:
		return fmt.Sprintf("%s/%s move • %s add • %s edit • %s delete • %s back",
			k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Back)
	default:
		return fmt.Sprintf("%s/%s move • %s open • %s groceries • %s cars • %s new area • %s quit",
			k.Up, k.Down, k.Open, k.Groceries, k.Cars, k.Add, k.Quit)
	}
}

func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
