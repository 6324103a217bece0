package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/homekeeper/internal/dialogs"
	"github.com/mmynk/homekeeper/internal/models"
	"github.com/mmynk/homekeeper/internal/notify"
)

type field struct {
	label string
	value string
}

// form edits the draft of an entry dialog one field at a time.
type form struct {
	title  string
	fields []field
	index  int
	submit func(ctx context.Context, values []string) error
}

func (f *form) values() []string {
	out := make([]string, len(f.fields))
	for i, fd := range f.fields {
		out[i] = fd.value
	}
	return out
}

// newForm binds a form to dlg. The fields start from the dialog's current
// draft; submitting writes them back and submits the dialog.
func newForm[D dialogs.Draft](title string, dlg *dialogs.Dialog[D], encode func(D) []field, decode func([]string) D) *form {
	return &form{
		title:  title,
		fields: encode(dlg.Draft()),
		submit: func(ctx context.Context, values []string) error {
			dlg.OpenWith(decode(values))
			return dlg.Submit(ctx)
		},
	}
}

func taskForm(title string, dlg *dialogs.Dialog[dialogs.TaskDraft]) *form {
	return newForm(title, dlg,
		func(d dialogs.TaskDraft) []field {
			return []field{
				{"name", d.Name},
				{"description", d.Description},
				{"assignees (comma separated)", strings.Join(d.AssignedTo, ", ")},
				{"priority (low/medium/high)", string(d.Priority)},
				{"due date (YYYY-MM-DD)", d.DueDate},
				{"points (1-100)", strconv.Itoa(d.Points)},
			}
		},
		func(v []string) dialogs.TaskDraft {
			d := dialogs.NewTaskDraft()
			d.Name = v[0]
			d.Description = v[1]
			d.AssignedTo = splitList(v[2])
			d.Priority = models.Priority(strings.TrimSpace(v[3]))
			d.DueDate = strings.TrimSpace(v[4])
			d.Points = atoi(v[5])
			return d
		},
	)
}

func itemForm(dlg *dialogs.Dialog[dialogs.ItemDraft]) *form {
	return newForm("New grocery item", dlg,
		func(d dialogs.ItemDraft) []field {
			return []field{
				{"name", d.Name},
				{"quantity", d.Quantity},
				{"category (food/hygiene/cleaning/other)", string(d.Category)},
				{"priority (low/high)", string(d.Priority)},
				{"added by", d.AddedBy},
			}
		},
		func(v []string) dialogs.ItemDraft {
			return dialogs.ItemDraft{
				Name:     v[0],
				Quantity: v[1],
				Category: models.GroceryCategory(strings.TrimSpace(v[2])),
				Priority: models.GroceryPriority(strings.TrimSpace(v[3])),
				AddedBy:  strings.TrimSpace(v[4]),
			}
		},
	)
}

func carForm(title string, dlg *dialogs.Dialog[dialogs.CarDraft]) *form {
	id := dlg.Draft().ID
	return newForm(title, dlg,
		func(d dialogs.CarDraft) []field {
			return []field{
				{"name", d.Name},
				{"plate", d.Plate},
				{"owner", d.Owner},
				{"year", d.Year},
				{"color", d.Color},
				{"mileage", d.Mileage},
				{"next service (YYYY-MM-DD)", d.NextService},
				{"next inspection (YYYY-MM-DD)", d.NextInspection},
				{"fuel level (0-100)", strconv.Itoa(d.FuelLevel)},
			}
		},
		func(v []string) dialogs.CarDraft {
			return dialogs.CarDraft{
				ID:             id,
				Name:           v[0],
				Plate:          v[1],
				Owner:          v[2],
				Year:           strings.TrimSpace(v[3]),
				Color:          v[4],
				Mileage:        strings.TrimSpace(v[5]),
				NextService:    strings.TrimSpace(v[6]),
				NextInspection: strings.TrimSpace(v[7]),
				FuelLevel:      atoi(v[8]),
			}
		},
	)
}

func categoryForm(dlg *dialogs.Dialog[dialogs.CategoryDraft]) *form {
	return newForm("New area", dlg,
		func(d dialogs.CategoryDraft) []field {
			return []field{
				{"name", d.Name},
				{"icon (home/trees/chef-hat/car/sparkles/package)", string(d.Icon)},
				{"description", d.Description},
			}
		},
		func(v []string) dialogs.CategoryDraft {
			return dialogs.CategoryDraft{
				Name:        v[0],
				Icon:        models.ParseIcon(strings.TrimSpace(v[1])),
				Description: v[2],
			}
		},
	)
}

func (m Model) openForm(f *form) (tea.Model, tea.Cmd) {
	m.form = f
	m.input.Placeholder = f.fields[0].label
	m.input.SetValue(f.fields[0].value)
	m.setStatus(notify.LevelInfo, f.title+": tab to move, enter to save, esc to cancel")
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case m.keys.Back, "esc":
		m.form = nil
		m.input.Blur()
		m.setStatus(notify.LevelInfo, "Cancelled")
		return m, nil
	case "tab", "down":
		m.moveField(1)
		return m, nil
	case "shift+tab", "up":
		m.moveField(-1)
		return m, nil
	case "enter":
		f.fields[f.index].value = m.input.Value()
		if f.index < len(f.fields)-1 {
			m.moveField(1)
			return m, nil
		}
		err := m.run(func(ctx context.Context) error {
			return f.submit(ctx, f.values())
		})
		if err != nil {
			// The dialog stays open on failure; so does the form.
			return m, nil
		}
		m.form = nil
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) moveField(delta int) {
	f := m.form
	f.fields[f.index].value = m.input.Value()
	f.index = wrapIndex(f.index+delta, len(f.fields))
	m.input.Placeholder = f.fields[f.index].label
	m.input.SetValue(f.fields[f.index].value)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// atoi returns -1 for anything that is not a number, which the drafts reject.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
