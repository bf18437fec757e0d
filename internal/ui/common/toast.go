package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ToastType identifies the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastError
)

// Toast represents a notification message
type Toast struct {
	Message string
	Type    ToastType
}

// ToastDismissed is sent when a toast's display time has elapsed.
type ToastDismissed struct {
	seq int
}

// ToastModel shows one toast at a time; a newer toast replaces the current one.
type ToastModel struct {
	current *Toast
	seq     int
	styles  Styles
}

// NewToastModel creates a new toast model
func NewToastModel() *ToastModel {
	return &ToastModel{styles: DefaultStyles()}
}

// SetStyles updates the toast styles (for theme changes).
func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Show displays a toast and schedules its dismissal.
func (m *ToastModel) Show(message string, toastType ToastType, duration time.Duration) tea.Cmd {
	m.seq++
	m.current = &Toast{Message: message, Type: toastType}
	seq := m.seq
	return SafeTick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{seq: seq}
	})
}

// ShowSuccess shows a success toast
func (m *ToastModel) ShowSuccess(message string) tea.Cmd {
	return m.Show(message, ToastSuccess, 3*time.Second)
}

// ShowError shows an error toast
func (m *ToastModel) ShowError(message string) tea.Cmd {
	return m.Show(message, ToastError, 5*time.Second)
}

// ShowInfo shows an info toast
func (m *ToastModel) ShowInfo(message string) tea.Cmd {
	return m.Show(message, ToastInfo, 3*time.Second)
}

// Update handles messages
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if d, ok := msg.(ToastDismissed); ok && d.seq == m.seq {
		m.current = nil
	}
	return m, nil
}

// View renders the toast notification
func (m *ToastModel) View() string {
	if m.current == nil {
		return ""
	}

	var style lipgloss.Style
	icon := "i "
	switch m.current.Type {
	case ToastSuccess:
		style = m.styles.ToastSuccess
		icon = Icons.Success + " "
	case ToastError:
		style = m.styles.ToastError
		icon = Icons.Error + " "
	default:
		style = m.styles.ToastInfo
	}
	return style.Render(icon + m.current.Message)
}

// Visible returns whether a toast is currently shown
func (m *ToastModel) Visible() bool {
	return m.current != nil
}
