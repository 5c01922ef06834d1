package gui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/spellbee/internal"
	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/round"
	"codeberg.org/snonux/spellbee/internal/session"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
)

// AppID identifies spellbee to the fyne preferences store
const AppID = "org.codeberg.snonux.spellbee"

var _ round.Presenter = (*Application)(nil)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	progressLabel *widget.Label
	subsetSelect  *widget.Select
	guessEntry    *GuessEntry
	statusLabel   *widget.Label
	reward        *RewardIndicator
	toast         *Toast
	logViewer     *LogViewer

	// Action buttons
	pronounceBtn *ttwidget.Button
	repeatBtn    *ttwidget.Button
	submitBtn    *ttwidget.Button
	resetBtn     *ttwidget.Button
	helpBtn      *ttwidget.Button

	// Round state
	session    *session.Session
	controller *round.Controller
	confirming bool
}

// New creates the main window on fyneApp. Call Attach before Run.
func New(fyneApp fyne.App) *Application {
	fyneApp.SetIcon(GetAppIcon())

	a := &Application{app: fyneApp}
	a.setupUI()

	fyneApp.Lifecycle().SetOnStarted(func() {
		a.logViewer.GoLive()
	})
	return a
}

// LogWriter returns the writer feeding the activity panel
func (a *Application) LogWriter() io.Writer {
	return a.logViewer
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("SpellBee v%s - Spelling Practice", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(640, 720))

	a.progressLabel = widget.NewLabel(round.FormatProgress(classifier.Snapshot{}))
	a.progressLabel.TextStyle = fyne.TextStyle{Monospace: true}

	a.subsetSelect = widget.NewSelect(classifier.SubsetNames(), a.onSubsetChanged)
	a.subsetSelect.SetSelected(classifier.NeverTried.String())

	a.guessEntry = NewGuessEntry()
	a.guessEntry.OnSubmitted = func(string) {
		a.onSubmitGuess()
	}
	a.guessEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	// Tooltips are set after the tooltip layer exists
	a.pronounceBtn = ttwidget.NewButtonWithIcon("Pronounce", theme.MediaPlayIcon(), a.onPronounce)
	a.pronounceBtn.Importance = widget.HighImportance
	a.repeatBtn = ttwidget.NewButtonWithIcon("Repeat", theme.MediaReplayIcon(), a.onRepeat)
	a.submitBtn = ttwidget.NewButtonWithIcon("", theme.ConfirmIcon(), a.onSubmitGuess)
	a.resetBtn = ttwidget.NewButtonWithIcon("Reset All", theme.ViewRefreshIcon(), a.onReset)
	a.resetBtn.Importance = widget.DangerImportance
	a.helpBtn = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	a.reward = NewRewardIndicator()
	a.toast = NewToast(3 * time.Second)
	a.logViewer = NewLogViewer()

	a.statusLabel = widget.NewLabel("Loading word list...")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	listSection := container.NewBorder(nil, nil, widget.NewLabel("Word list:"), nil, a.subsetSelect)

	toolbar := container.NewHBox(
		a.pronounceBtn,
		a.repeatBtn,
		layout.NewSpacer(),
		a.resetBtn,
		a.helpBtn,
	)

	guessSection := container.NewBorder(nil, nil, nil, a.submitBtn, a.guessEntry)

	top := container.NewVBox(
		listSection,
		toolbar,
		widget.NewSeparator(),
		guessSection,
		a.toast,
	)

	middle := container.NewHSplit(
		container.NewCenter(a.reward),
		container.NewBorder(widget.NewLabel("Progress:"), nil, nil, nil, a.progressLabel),
	)
	middle.SetOffset(0.5)

	bottom := container.NewVBox(
		a.logViewer,
		widget.NewSeparator(),
		a.statusLabel,
	)

	content := container.NewBorder(top, bottom, nil, nil, middle)

	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	a.setControlsEnabled(false)

	a.window.SetOnClosed(func() {
		if a.session != nil {
			if err := a.session.Teardown(); err != nil {
				slog.Error("teardown failed", "error", err)
			}
		}
	})

	a.setupKeyboardShortcuts()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.pronounceBtn.SetToolTip("Pronounce a new word (p)")
	a.repeatBtn.SetToolTip("Repeat the current word (r)")
	a.submitBtn.SetToolTip("Check your spelling (Enter)")
	a.resetBtn.SetToolTip("Mark every word as never tried")
	a.helpBtn.SetToolTip("Show hotkeys (h)")
}

// Attach initializes sess with the words from src and wires the window
// to its round. A vocabulary that cannot be loaded is returned as error.
func (a *Application) Attach(ctx context.Context, sess *session.Session, src vocabulary.Source) error {
	if err := sess.Initialize(ctx, src, a); err != nil {
		a.statusLabel.SetText("Error: " + err.Error())
		return err
	}

	controller, err := sess.Controller()
	if err != nil {
		return err
	}

	a.session = sess
	a.controller = controller
	a.subsetSelect.SetSelected(controller.Subset().String())
	a.statusLabel.SetText(fmt.Sprintf("%d words from %s, voice: %s",
		sess.Vocabulary().Len(), src.Name(), sess.SpeakerName()))
	a.setControlsEnabled(true)
	return nil
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// ShowProgress updates the progress counter
func (a *Application) ShowProgress(snapshot classifier.Snapshot) {
	a.progressLabel.SetText(round.FormatProgress(snapshot))
}

// ShowToast shows a transient notice
func (a *Application) ShowToast(message string) {
	a.toast.ShowMessage(message)
}

// SetRewardVisible shows or hides the dancing dog
func (a *Application) SetRewardVisible(visible bool) {
	a.reward.SetVisible(visible)
}

// ClearGuess empties the guess entry
func (a *Application) ClearGuess() {
	a.guessEntry.SetText("")
}

func (a *Application) onSubsetChanged(name string) {
	if a.controller == nil {
		return
	}

	subset, err := classifier.ParseSubset(name)
	if err != nil {
		slog.Warn("unknown word list selected", "list", name)
		return
	}
	a.controller.SelectSubset(subset)
}

func (a *Application) onPronounce() {
	if a.controller == nil {
		return
	}
	a.handleRoundError(a.controller.PronounceNext())
	a.window.Canvas().Focus(a.guessEntry)
}

func (a *Application) onRepeat() {
	if a.controller == nil {
		return
	}
	a.handleRoundError(a.controller.Repeat())
}

func (a *Application) onSubmitGuess() {
	if a.controller == nil {
		return
	}
	_, err := a.controller.SubmitGuess(a.guessEntry.Text)
	a.handleRoundError(err)
}

func (a *Application) onReset() {
	if a.controller == nil || a.confirming {
		return
	}

	a.confirming = true
	dialog.ShowConfirm(round.ConfirmTitle, round.ConfirmResetText, a.onResetConfirmed, a.window)
}

func (a *Application) onResetConfirmed(confirmed bool) {
	a.confirming = false
	if !confirmed {
		slog.Debug("reset cancelled")
		return
	}
	a.handleRoundError(a.controller.ResetAll())
}

// handleRoundError logs errors the controller has already shown as a
// notice and reports anything unexpected in a dialog
func (a *Application) handleRoundError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, round.ErrEmptySubset) || errors.Is(err, round.ErrNoActiveWord) {
		slog.Debug("round notice", "error", err)
		return
	}
	slog.Error("round operation failed", "error", err)
	dialog.ShowError(err, a.window)
}

func (a *Application) setControlsEnabled(enabled bool) {
	widgets := []fyne.Disableable{a.pronounceBtn, a.repeatBtn, a.submitBtn, a.resetBtn, a.subsetSelect, a.guessEntry}
	for _, w := range widgets {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}
