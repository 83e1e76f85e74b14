// Package tui implements the terminal settings panel.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/service"
	"github.com/amterp/filecolor/internal/watcher"
)

// ReloadedMsg tells the panel that the settings changed on disk.
type ReloadedMsg struct{}

// Options configures a panel.
type Options struct {
	// Title is shown above the panel, typically the vault name.
	Title string
	// Reload re-reads settings from disk and reports whether they changed.
	// Called in the update loop on ReloadedMsg.
	Reload func() (bool, error)
}

type field int

const (
	fieldValue field = iota
	fieldName
)

// Model is the bubbletea model for the settings panel.
type Model struct {
	controller *service.DraftController
	opts       Options
	styles     Styles
	keys       keyMap

	cursor  int
	field   field
	editing bool
	editID  string
	input   textinput.Model

	status      string
	statusIsErr bool
	confirmQuit bool
}

// New creates a panel editing the given controller.
func New(controller *service.DraftController, opts Options) Model {
	input := textinput.New()
	input.Prompt = ""
	// Stored names and values can be any length
	input.CharLimit = 0

	return Model{
		controller: controller,
		opts:       opts,
		styles:     DefaultStyles(),
		keys:       defaultKeyMap(),
		input:      input,
	}
}

// Run launches the panel program. When fw is non-nil, settings changes it
// reports are delivered to the panel as ReloadedMsg.
func Run(m Model, fw *watcher.Watcher) error {
	program := tea.NewProgram(m, tea.WithAltScreen())

	if fw != nil {
		fw.Subscribe(watcher.SubscriberFunc(func(watcher.Change) {
			program.Send(ReloadedMsg{})
		}))
		if err := fw.Start(); err != nil {
			return err
		}
		defer fw.Stop()
	}

	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Rows are laid out as: palette colors, the add action, then options.
func (m Model) colorCount() int  { return len(m.controller.Palette()) }
func (m Model) addRow() int      { return m.colorCount() }
func (m Model) rowCount() int    { return m.colorCount() + 1 + len(model.OptionKeys) }
func (m Model) onColorRow() bool { return m.cursor < m.colorCount() }

func (m Model) optionAt(row int) (model.OptionKey, bool) {
	i := row - m.addRow() - 1
	if i < 0 || i >= len(model.OptionKeys) {
		return "", false
	}
	return model.OptionKeys[i], true
}

func (m Model) focusedColor() (model.PaletteColor, bool) {
	palette := m.controller.Palette()
	if m.cursor < 0 || m.cursor >= len(palette) {
		return model.PaletteColor{}, false
	}
	return palette[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReloadedMsg:
		if m.opts.Reload != nil {
			changed, err := m.opts.Reload()
			if err != nil {
				m.setError(fmt.Errorf("reload failed: %w", err))
				return m, nil
			}
			if !changed {
				return m, nil
			}
		}
		m.controller.Resync()
		m.clampCursor()
		m.setStatus("Settings reloaded from disk.")
		m.followEditedColor()
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyEnter:
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Every keystroke reaches the draft, matching an input's change event
	if m.field == fieldValue {
		m.controller.SetColorValue(m.editID, m.input.Value())
	} else {
		m.controller.SetColorName(m.editID, m.input.Value())
	}
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if msg.Type != tea.KeyCtrlC && m.controller.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("Unsaved palette changes. Press q again to discard them and quit.")
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Field):
		if m.field == fieldValue {
			m.field = fieldName
		} else {
			m.field = fieldValue
		}
	case key.Matches(msg, m.keys.Add):
		return m.addColor()
	case key.Matches(msg, m.keys.Remove):
		if color, ok := m.focusedColor(); ok {
			m.controller.RemoveColor(color.ID)
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Revert):
		m.controller.RevertPalette()
		m.clampCursor()
		m.setStatus("Palette changes reverted.")
	case key.Matches(msg, m.keys.Enter):
		return m.activate()
	}
	return m, nil
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch {
	case m.onColorRow():
		cmd := m.startEditing()
		return m, cmd
	case m.cursor == m.addRow():
		return m.addColor()
	}

	if opt, ok := m.optionAt(m.cursor); ok {
		value, err := m.controller.ToggleOption(opt)
		if err != nil {
			m.setError(err)
		} else {
			state := "off"
			if value {
				state = "on"
			}
			m.setStatus(fmt.Sprintf("%s turned %s.", opt.Info().Name, state))
		}
	}
	return m, nil
}

func (m Model) addColor() (tea.Model, tea.Cmd) {
	m.controller.AddColor()
	m.cursor = m.colorCount() - 1
	m.field = fieldName
	cmd := m.startEditing()
	return m, cmd
}

func (m *Model) startEditing() tea.Cmd {
	color, ok := m.focusedColor()
	if !ok {
		return nil
	}
	if m.field == fieldValue {
		m.input.Placeholder = model.DefaultColorValue
	} else {
		m.input.Placeholder = "Color name"
	}
	m.loadInput(color)
	m.editID = color.ID
	m.editing = true
	return m.input.Focus()
}

// loadInput fills the input with the edited field of color.
func (m *Model) loadInput(color model.PaletteColor) {
	value := color.Value
	if m.field == fieldName {
		value = color.Name
	}
	m.input.SetValue(value)
}

// followEditedColor keeps an open field bound to its color after the palette
// changed underneath it. Editing stops if the color is gone.
func (m *Model) followEditedColor() {
	if !m.editing {
		return
	}
	for i, color := range m.controller.Palette() {
		if color.ID == m.editID {
			m.cursor = i
			m.loadInput(color)
			return
		}
	}
	m.stopEditing()
	m.setStatus("Settings reloaded from disk. The color being edited was removed.")
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editID = ""
	m.input.Blur()
}

func (m *Model) save() {
	if err := m.controller.SavePalette(); err != nil {
		m.setError(fmt.Errorf("palette saved with errors: %w", err))
		return
	}
	m.setStatus("Palette saved.")
}

func (m *Model) clampCursor() {
	if m.cursor >= m.rowCount() {
		m.cursor = m.rowCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
}

func (m Model) View() string {
	title := "File Color"
	if m.opts.Title != "" {
		title += " · " + m.opts.Title
	}

	lines := []string{m.styles.Title.Render(title), ""}
	lines = append(lines, m.paletteLines()...)
	lines = append(lines, "")
	lines = append(lines, m.optionLines()...)

	if m.status != "" {
		style := m.styles.Success
		if m.statusIsErr {
			style = m.styles.Error
		}
		lines = append(lines, "", style.Render(m.status))
	}

	var help string
	if m.editing {
		help = helpLine(m.keys.Escape)
	} else {
		help = helpLine(m.keys.Up, m.keys.Down, m.keys.Field, m.keys.Enter, m.keys.Add, m.keys.Remove, m.keys.Quit)
	}
	lines = append(lines, "", m.styles.Muted.Render(help))

	return strings.Join(lines, "\n") + "\n"
}

func (m Model) paletteLines() []string {
	lines := []string{m.styles.Heading.Render("Palette")}

	palette := m.controller.Palette()
	if len(palette) == 0 {
		lines = append(lines, m.styles.Muted.Render("No colors in the palette"))
	}

	for i, color := range palette {
		focused := i == m.cursor
		value := m.fieldView(color.Value, model.DefaultColorValue, focused && m.field == fieldValue)
		name := m.fieldView(color.Name, "Color name", focused && m.field == fieldName)
		lines = append(lines, fmt.Sprintf("%s%s %s %s", m.cursorMark(i), m.styles.Swatch(color.Value), value, name))
	}

	add := "+ Add Color"
	if m.cursor == m.addRow() {
		add = m.styles.Focus.Render(add)
	} else {
		add = m.styles.Text.Render(add)
	}
	lines = append(lines, m.cursorMark(m.addRow())+add)

	if m.controller.Dirty() {
		lines = append(lines,
			"",
			m.styles.Warning.Render("You have unsaved palette changes."),
			m.styles.Muted.Render(helpLine(m.keys.Revert, m.keys.Save)),
		)
	}
	return lines
}

func (m Model) fieldView(value, placeholder string, focused bool) string {
	if focused && m.editing {
		return m.styles.Editing.Render(m.input.View())
	}
	text := m.styles.Text.Render(value)
	if value == "" {
		text = m.styles.Muted.Render(placeholder)
	}
	if focused {
		return m.styles.Focus.Render("[") + text + m.styles.Focus.Render("]")
	}
	return m.styles.Field.Render(text)
}

func (m Model) optionLines() []string {
	lines := []string{m.styles.Heading.Render("Options")}
	opts := m.controller.Options()

	for i, opt := range model.OptionKeys {
		row := m.addRow() + 1 + i
		info := opt.Info()

		box := "[ ]"
		if opts.Get(opt) {
			box = "[x]"
		}
		label := box + " " + info.Name
		if row == m.cursor {
			label = m.styles.Focus.Render(label)
		} else {
			label = m.styles.Text.Render(label)
		}
		lines = append(lines,
			m.cursorMark(row)+label,
			"    "+m.styles.Muted.Render(info.Description),
		)
	}
	return lines
}

func (m Model) cursorMark(row int) string {
	if row == m.cursor {
		return m.styles.Focus.Render("> ")
	}
	return "  "
}
