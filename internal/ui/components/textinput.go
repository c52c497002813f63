package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// RoleInput wraps bubbles/textinput for entering a job role.
type RoleInput struct {
	Model textinput.Model
}

// NewRoleInput creates a new styled role input.
func NewRoleInput(placeholder string, charLimit int) RoleInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return RoleInput{Model: ti}
}

// Init returns the initial command.
func (r RoleInput) Init() tea.Cmd {
	return r.Model.Focus()
}

// Update handles messages.
func (r RoleInput) Update(msg tea.Msg) (RoleInput, tea.Cmd) {
	var cmd tea.Cmd
	r.Model, cmd = r.Model.Update(msg)
	return r, cmd
}

// View renders the input.
func (r RoleInput) View() string {
	return r.Model.View()
}

// Value returns the trimmed input value.
func (r RoleInput) Value() string {
	return strings.TrimSpace(r.Model.Value())
}

// Reset clears the input.
func (r *RoleInput) Reset() {
	r.Model.SetValue("")
}
