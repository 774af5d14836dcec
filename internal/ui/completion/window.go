package completion

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focustrack/internal/core/analytics"
	"focustrack/internal/core/model"
	"focustrack/internal/ui/theme"
)

// Callbacks receive the user's decision for a finished interval.
type Callbacks struct {
	OnSave    func(finished model.SessionType, note string)
	OnDiscard func(finished model.SessionType)
}

// Window asks for a note after an interval finishes.
type Window struct {
	window        fyne.Window
	callbacks     Callbacks
	finished      model.SessionType
	pending       bool
	titleLabel    *canvas.Text
	messageLabel  *widget.Label
	note          *widget.Entry
	saveButton    *widget.Button
	discardButton *widget.Button
}

// New creates the completion window. It stays hidden until Show.
func New(app fyne.App, palette theme.Palette, callbacks Callbacks) *Window {
	window := app.NewWindow("Session complete")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText("🎉 Session complete!", palette.Primary)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	messageLabel := widget.NewLabel("")
	messageLabel.Wrapping = fyne.TextWrapWord

	note := widget.NewMultiLineEntry()
	note.SetPlaceHolder("What did you work on? (optional)")
	note.SetMinRowsVisible(3)

	saveButton := widget.NewButton("Save", nil)
	saveButton.Importance = widget.HighImportance
	discardButton := widget.NewButton("Discard", nil)

	buttons := container.NewHBox(layout.NewSpacer(), discardButton, saveButton)
	window.SetContent(container.NewPadded(container.NewVBox(titleLabel, messageLabel, note, buttons)))
	window.Resize(fyne.NewSize(420, 240))

	completion := &Window{
		window:        window,
		callbacks:     callbacks,
		titleLabel:    titleLabel,
		messageLabel:  messageLabel,
		note:          note,
		saveButton:    saveButton,
		discardButton: discardButton,
	}
	saveButton.OnTapped = completion.handleSave
	discardButton.OnTapped = completion.handleDiscard
	window.SetCloseIntercept(completion.handleDiscard)

	return completion
}

// Show asks for a note for finished. A pending prompt is replaced and its
// interval discarded.
func (completion *Window) Show(finished model.SessionType) {
	if completion.pending && completion.callbacks.OnDiscard != nil {
		completion.callbacks.OnDiscard(completion.finished)
	}
	completion.finished = finished
	completion.pending = true
	completion.messageLabel.SetText(Message(finished))
	completion.note.SetText("")
	completion.window.Show()
	completion.window.CenterOnScreen()
	completion.window.RequestFocus()
	completion.window.Canvas().Focus(completion.note)
}

// SetPalette recolours the title after a theme change.
func (completion *Window) SetPalette(palette theme.Palette) {
	completion.titleLabel.Color = palette.Primary
	completion.titleLabel.Refresh()
}

// Message is the congratulation shown for finished.
func Message(finished model.SessionType) string {
	return fmt.Sprintf("Nice work! You completed a %d-minute %s session.", finished.Minutes(), finished.Label())
}

// EarnedMessage lists newly earned badges, or returns "" when there are none.
func EarnedMessage(earned []analytics.Badge) string {
	if len(earned) == 0 {
		return ""
	}
	names := make([]string, 0, len(earned))
	for _, badge := range earned {
		names = append(names, badge.Icon+" "+badge.Name)
	}
	return "Badge unlocked: " + strings.Join(names, ", ")
}

func (completion *Window) handleSave() {
	if !completion.pending {
		completion.window.Hide()
		return
	}
	completion.pending = false
	note := completion.note.Text
	completion.window.Hide()
	if completion.callbacks.OnSave != nil {
		completion.callbacks.OnSave(completion.finished, note)
	}
}

func (completion *Window) handleDiscard() {
	if !completion.pending {
		completion.window.Hide()
		return
	}
	completion.pending = false
	completion.window.Hide()
	if completion.callbacks.OnDiscard != nil {
		completion.callbacks.OnDiscard(completion.finished)
	}
}
