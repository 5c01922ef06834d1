package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const hotkeys = `## Practice
**p** Pronounce a new word  
**r** Repeat the current word  
**Enter** Check your spelling  
**Esc** Leave the guess field  

## Help
**h** Show hotkeys  
**c** Close dialog  
**q** Quit application  

---
Press **c** to close this dialog`

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		// Let the character be typed into the guess field
		if a.window.Canvas().Focused() == a.guessEntry {
			return
		}
		if a.confirming {
			return
		}
		a.handleShortcutRune(r)
	})

	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			a.window.Canvas().Unfocus()
		case fyne.KeyReturn, fyne.KeyEnter:
			if a.window.Canvas().Focused() == nil {
				a.window.Canvas().Focus(a.guessEntry)
			}
		}
	})
}

// handleShortcutRune runs the action bound to r
func (a *Application) handleShortcutRune(r rune) {
	switch r {
	case 'p', 'P':
		if !a.pronounceBtn.Disabled() {
			a.onPronounce()
		}
	case 'r', 'R':
		if !a.repeatBtn.Disabled() {
			a.onRepeat()
		}
	case 'h', 'H', '?':
		a.onShowHotkeys()
	case 'q', 'Q':
		a.window.Close()
	}
}

func (a *Application) onShowHotkeys() {
	content := widget.NewRichTextFromMarkdown(hotkeys)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(360, 320))

	d := dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window)

	originalRuneHandler := a.window.Canvas().OnTypedRune()
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'c' || r == 'C' {
			d.Hide()
			return
		}
		if originalRuneHandler != nil {
			originalRuneHandler(r)
		}
	})

	d.SetOnClosed(func() {
		a.setupKeyboardShortcuts()
	})
	d.Show()
}
