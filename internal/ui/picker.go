package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
)

// ProjectChoice is one registered project offered by Project.
type ProjectChoice struct {
	Path string
	Icon string
}

// FormRunner runs a completed form. Tests replace it to avoid a terminal.
type FormRunner func(*huh.Form) error

// Picker asks the user for launch inputs. Each question runs as its own
// huh.Form so a single viewport never holds more than one group.
type Picker struct {
	theme    *Theme
	headless *HeadlessManager
	run      FormRunner
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithFormRunner replaces the function that runs each form.
func WithFormRunner(fn FormRunner) PickerOption {
	return func(p *Picker) {
		p.run = fn
	}
}

// NewPicker creates a Picker.
func NewPicker(theme *Theme, hm *HeadlessManager, opts ...PickerOption) *Picker {
	p := &Picker{
		theme:    theme,
		headless: hm,
		run:      func(f *huh.Form) error { return f.Run() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Directory browses for a folder starting at start.
func (p *Picker) Directory(start string) (string, error) {
	var dir string
	field := huh.NewFilePicker().
		Title("Project folder").
		Description("Select a directory to open").
		CurrentDirectory(start).
		DirAllowed(true).
		FileAllowed(false).
		ShowHidden(false).
		Height(12).
		Value(&dir)

	if err := p.ask(field); err != nil {
		return "", err
	}
	if dir == "" {
		return "", ErrCancelled
	}
	return dir, nil
}

// Project selects one of the registered projects.
func (p *Picker) Project(choices []ProjectChoice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Icon+" "+c.Path, c.Path)
	}

	selected := choices[0].Path
	field := huh.NewSelect[string]().
		Title("Project").
		Options(opts...).
		Value(&selected)

	if err := p.ask(field); err != nil {
		return "", err
	}
	return selected, nil
}

// Model selects a model name. The empty value keeps the assistant's own
// default. A current value missing from models is still offered.
func (p *Picker) Model(models []string, current string) (string, error) {
	names := slices.Clone(models)
	if current != "" && !slices.Contains(names, current) {
		names = append([]string{current}, names...)
	}

	opts := make([]huh.Option[string], 0, len(names)+1)
	opts = append(opts, huh.NewOption("default", ""))
	for _, name := range names {
		opts = append(opts, huh.NewOption(name, name))
	}

	selected := current
	field := huh.NewSelect[string]().
		Title("Model").
		Options(opts...).
		Value(&selected)

	if err := p.ask(field); err != nil {
		return "", err
	}
	return selected, nil
}

// ConfirmSkipPermissions asks whether to bypass permission prompts.
func (p *Picker) ConfirmSkipPermissions() (bool, error) {
	var skip bool
	field := huh.NewConfirm().
		Title("Skip permission prompts?").
		Description("The assistant will run tools without asking.").
		Affirmative("Yes").
		Negative("No").
		Value(&skip)

	if err := p.ask(field); err != nil {
		return false, err
	}
	return skip, nil
}

func (p *Picker) ask(field huh.Field) error {
	if p.headless.IsHeadless() {
		return ErrHeadless
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme.HuhTheme()).
		WithAccessible(false)

	if err := p.run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("picker: %w", err)
	}
	return nil
}
