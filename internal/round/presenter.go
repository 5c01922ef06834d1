package round

import (
	"fmt"

	"codeberg.org/snonux/spellbee/internal/classifier"
)

// User-visible messages
const (
	MsgCorrect       = "Correct guess! You rock"
	MsgIncorrect     = "Bad guess! Sorry!"
	MsgEmptySubset   = "No words in the selected list"
	MsgNoActiveWord  = "Press pronounce to hear a word first"
	ConfirmTitle     = "Reset All"
	ConfirmResetText = "Are you sure you want to reset the app?"
)

// Speaker pronounces a word. Speak must not block on playback.
type Speaker interface {
	Speak(text string)
}

// Presenter renders round state for the learner
type Presenter interface {
	ShowProgress(snapshot classifier.Snapshot)
	ShowToast(message string)
	SetRewardVisible(visible bool)
	ClearGuess()
}

// FormatProgress renders the four-line progress counter
func FormatProgress(s classifier.Snapshot) string {
	return fmt.Sprintf("Total Words: %d\nCorrect Words: %d\nIncorrect Words: %d\nNever Tried Words: %d",
		s.Total, s.Correct, s.Incorrect, s.NeverTried)
}
