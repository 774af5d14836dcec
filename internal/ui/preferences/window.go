package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	dailyGoal     *widget.Entry
	darkMode      *widget.Check
	autoSwitch    *widget.Check
	notifications *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusTrack Preferences")

	dailyGoal := widget.NewEntry()
	dailyGoal.Validator = func(value string) error {
		_, err := strconv.Atoi(value)
		return err
	}
	darkMode := widget.NewCheck("Dark mode", nil)
	autoSwitch := widget.NewCheck("Switch between focus and break after saving", nil)
	notifications := widget.NewCheck("Desktop notification when a session ends", nil)
	launchAtLogin := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Goals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Daily goal"), dailyGoal, widget.NewLabel("sessions")),
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		darkMode,
		autoSwitch,
		notifications,
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 300))

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		dailyGoal:     dailyGoal,
		darkMode:      darkMode,
		autoSwitch:    autoSwitch,
		notifications: notifications,
		launchAtLogin: launchAtLogin,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(cancelButton.OnTapped)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.dailyGoal.SetText(strconv.Itoa(settings.DailyGoal))
	prefs.darkMode.SetChecked(settings.DarkMode)
	prefs.autoSwitch.SetChecked(settings.AutoSwitch)
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	// Below 1 is stored as 1; non-numbers keep the previous goal.
	if goal, err := strconv.Atoi(prefs.dailyGoal.Text); err == nil {
		settings.DailyGoal = max(goal, 1)
	}
	settings.DarkMode = prefs.darkMode.Checked
	settings.AutoSwitch = prefs.autoSwitch.Checked
	settings.Notifications = prefs.notifications.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
