package tui

import (
	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/store"
	"github.com/Iron-Ham/ethicsim/internal/tui/view"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Custom scenario form fields, in tab order.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldDifficulty
	fieldParticipants
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:        "Title",
	fieldDescription:  "Description",
	fieldCategory:     "Category",
	fieldDifficulty:   "Difficulty",
	fieldParticipants: "Participants (comma separated)",
}

// customForm is the state of the custom scenario form. Category and
// difficulty are choices cycled with ←/→; index 0 means nothing chosen.
type customForm struct {
	inputs       [fieldCount]textinput.Model
	categories   []string
	difficulties []string
	category     int
	difficulty   int
	focus        int
}

func newCustomForm() customForm {
	f := customForm{
		categories:   append([]string{""}, catalog.Categories()...),
		difficulties: []string{""},
	}
	for _, d := range catalog.Difficulties() {
		f.difficulties = append(f.difficulties, string(d))
	}

	placeholders := map[int]string{
		fieldTitle:        "Enter scenario title",
		fieldDescription:  "Describe the ethical dilemma",
		fieldParticipants: "e.g., Government Official, Citizen",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 500
		ti.Width = 60
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Focus()
	return f
}

func isChoice(field int) bool {
	return field == fieldCategory || field == fieldDifficulty
}

// move shifts focus by delta, wrapping around.
func (f *customForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	if isChoice(f.focus) {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

// last reports whether the final field has focus.
func (f customForm) last() bool {
	return f.focus == fieldCount-1
}

// cycle steps the focused choice field by delta.
func (f *customForm) cycle(delta int) {
	switch f.focus {
	case fieldCategory:
		f.category = (f.category + delta + len(f.categories)) % len(f.categories)
	case fieldDifficulty:
		f.difficulty = (f.difficulty + delta + len(f.difficulties)) % len(f.difficulties)
	}
}

// update forwards msg to the focused text input.
func (f *customForm) update(msg tea.Msg) tea.Cmd {
	if isChoice(f.focus) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f customForm) values() store.ScenarioFields {
	return store.ScenarioFields{
		Title:        f.inputs[fieldTitle].Value(),
		Description:  f.inputs[fieldDescription].Value(),
		Category:     f.categories[f.category],
		Difficulty:   f.difficulties[f.difficulty],
		Participants: f.inputs[fieldParticipants].Value(),
	}
}

func (f customForm) rows() []view.FormField {
	rows := make([]view.FormField, fieldCount)
	for i := range rows {
		row := view.FormField{Label: fieldLabels[i], Focused: i == f.focus, Choice: isChoice(i)}
		switch i {
		case fieldCategory:
			row.Input = orPlaceholder(f.categories[f.category], "Select Category")
		case fieldDifficulty:
			row.Input = orPlaceholder(f.difficulties[f.difficulty], "Select Difficulty")
		default:
			row.Input = f.inputs[i].View()
		}
		rows[i] = row
	}
	return rows
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
