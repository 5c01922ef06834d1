package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GuessEntry is a single-line entry for typed guesses that reports Escape
type GuessEntry struct {
	widget.Entry
	onEscape func()
}

// NewGuessEntry creates a guess entry
func NewGuessEntry() *GuessEntry {
	entry := &GuessEntry{}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder("Type the word you heard and press Enter... Press Escape to exit field")
	return entry
}

// TypedKey handles key events
func (e *GuessEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *GuessEntry) SetOnEscape(f func()) {
	e.onEscape = f
}
