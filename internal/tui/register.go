// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-register/internal/app"
	"github.com/MKhiriev/go-register/internal/form"
	"github.com/MKhiriev/go-register/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputLogin = iota
	inputPassword
)

// RegisterModel is the Bubble Tea model for the registration screen. It
// mirrors two text inputs into a [form.RegistrationForm] and submits it with
// an async command, so the event loop stays the only writer of form state.
type RegisterModel struct {
	ctx  context.Context
	form *form.RegistrationForm

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	// note is the required-field hint shown under the focused input.
	note      string
	buildInfo models.AppBuildInfo
}

// NewRegisterModel creates a [RegisterModel] with the username input focused.
func NewRegisterModel(ctx context.Context, registrationForm *form.RegistrationForm, buildInfo models.AppBuildInfo) *RegisterModel {
	fields := make([]textinput.Model, 2)

	fields[inputLogin] = textinput.New()
	fields[inputLogin].Placeholder = app.LabelUsername
	fields[inputLogin].Width = 32
	fields[inputLogin].Focus()

	fields[inputPassword] = textinput.New()
	fields[inputPassword].Placeholder = app.LabelPassword
	fields[inputPassword].EchoMode = textinput.EchoPassword
	fields[inputPassword].EchoCharacter = '*'
	fields[inputPassword].Width = 32

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RegisterModel{
		ctx:       ctx,
		form:      registrationForm,
		inputs:    fields,
		spinner:   s,
		buildInfo: buildInfo,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerResultMsg: applies the outcome to the form and re-enables input.
//   - spinner ticks while a request is in flight.
//   - esc, ctrl+c: quit.
//   - tab, down / shift+tab, up: move focus.
//   - enter: submit.
//
// While a request is in flight every other key is dropped.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.form.Finish(msg.outcome)
		m.syncInputs()
		return m, m.inputs[m.focus].Focus()

	case spinner.TickMsg:
		if !m.form.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.form.IsLoading() {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	if m.form.IsLoading() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.note = ""
		m.form.SetLogin(m.inputs[inputLogin].Value())
		m.form.SetPassword(m.inputs[inputPassword].Value())
	}
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	loading := m.form.IsLoading()

	var b strings.Builder
	for i, label := range []string{app.LabelUsername, app.LabelPassword} {
		row := padRight(label, 10) + m.inputs[i].View()
		if loading {
			row = disabledStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
		if m.note != "" && i == m.focus {
			b.WriteString(noteStyle.Render("          " + m.note))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if loading {
		b.WriteString(disabledStyle.Render(buttonStyle.Render(app.LabelSubmitting)))
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	} else {
		b.WriteString(buttonStyle.Render(app.LabelSubmit))
	}
	b.WriteString("\n")

	if msg := m.form.Message(); msg != "" {
		b.WriteString("\n")
		if m.form.IsError() {
			b.WriteString(errorStyle.Render(msg))
		} else {
			b.WriteString(successStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.HintUsername))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(app.HintPassword))

	return renderPage(
		app.LabelTitle,
		b.String(),
		"tab: next field │ enter: register │ esc: quit",
		renderBuildInfoFooter(m.buildInfo),
	)
}

// submit starts a submission. A refusal because of an empty field moves
// focus to that field; a refusal because a request is in flight is silent.
func (m *RegisterModel) submit() tea.Cmd {
	req, err := m.form.Begin()

	var fieldErr *form.RequiredFieldError
	switch {
	case errors.As(err, &fieldErr):
		m.note = app.MsgRequiredField
		m.setFocus(int(fieldErr.Field))
		return nil
	case err != nil:
		return nil
	}

	m.note = ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	return tea.Batch(m.spinner.Tick, m.cmdRegister(req))
}

func (m *RegisterModel) cmdRegister(req models.RegistrationRequest) tea.Cmd {
	ctx := m.ctx
	registrationForm := m.form

	return func() tea.Msg {
		return registerResultMsg{outcome: registrationForm.Send(ctx, req)}
	}
}

// syncInputs copies the form fields back into the inputs after a submission,
// which clears them on success.
func (m *RegisterModel) syncInputs() {
	m.inputs[inputLogin].SetValue(m.form.Login())
	m.inputs[inputPassword].SetValue(m.form.Password())
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.setFocus((m.focus + 1) % len(m.inputs))
}

func (m *RegisterModel) focusPrev() {
	m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
