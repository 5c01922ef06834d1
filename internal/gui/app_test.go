package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/round"
	"codeberg.org/snonux/spellbee/internal/session"
	"codeberg.org/snonux/spellbee/internal/testutil"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
)

func newTestApplication(t *testing.T, words string) (*Application, *testutil.RecordingSpeaker) {
	t.Helper()

	a := New(test.NewApp())
	speaker := &testutil.RecordingSpeaker{}
	sess := session.New(speaker, session.Options{Seed: 1})

	if err := a.Attach(context.Background(), sess, &vocabulary.StringSource{Content: words}); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	return a, speaker
}

func TestAttachShowsProgress(t *testing.T) {
	a, _ := newTestApplication(t, "apple\nbanana\ncherry\n")

	want := round.FormatProgress(classifier.Snapshot{Total: 3, NeverTried: 3})
	if a.progressLabel.Text != want {
		t.Errorf("progress = %q, want %q", a.progressLabel.Text, want)
	}
	if a.subsetSelect.Selected != "neverTriedWords" {
		t.Errorf("selected list = %s, want neverTriedWords", a.subsetSelect.Selected)
	}
	if a.pronounceBtn.Disabled() {
		t.Error("controls should be enabled after Attach")
	}
	if a.reward.Visible() {
		t.Error("reward should start hidden")
	}
}

func TestAttachMissingVocabulary(t *testing.T) {
	a := New(test.NewApp())
	sess := session.New(&testutil.RecordingSpeaker{}, session.Options{})

	err := a.Attach(context.Background(), sess, vocabulary.NewFileSource(t.TempDir()+"/missing.txt"))
	if !errors.Is(err, vocabulary.ErrAssetUnavailable) {
		t.Fatalf("Attach() error = %v, want ErrAssetUnavailable", err)
	}
	if !a.pronounceBtn.Disabled() {
		t.Error("controls should stay disabled without a vocabulary")
	}
	if !strings.HasPrefix(a.statusLabel.Text, "Error:") {
		t.Errorf("status = %q, want an error", a.statusLabel.Text)
	}
}

func TestCorrectGuessShowsReward(t *testing.T) {
	a, speaker := newTestApplication(t, "apple\n")

	test.Tap(a.pronounceBtn)
	if speaker.Last() != "apple" {
		t.Fatalf("spoken = %q, want apple", speaker.Last())
	}

	a.guessEntry.SetText(" Apple ")
	test.Tap(a.submitBtn)

	if a.toast.Text() != round.MsgCorrect {
		t.Errorf("toast = %q, want %q", a.toast.Text(), round.MsgCorrect)
	}
	if !a.reward.Visible() {
		t.Error("reward should be visible after a correct guess")
	}
	if a.guessEntry.Text != "" {
		t.Errorf("guess entry = %q, want empty", a.guessEntry.Text)
	}
	if !strings.Contains(a.progressLabel.Text, "Correct Words: 1") {
		t.Errorf("progress not updated: %q", a.progressLabel.Text)
	}

	// The next pronounce hides the reward
	test.Tap(a.pronounceBtn)
	if a.reward.Visible() {
		t.Error("reward should be hidden after pronounce")
	}
}

func TestIncorrectGuess(t *testing.T) {
	a, _ := newTestApplication(t, "apple\n")

	test.Tap(a.pronounceBtn)
	a.guessEntry.SetText("aple")
	test.Tap(a.submitBtn)

	if a.toast.Text() != round.MsgIncorrect {
		t.Errorf("toast = %q, want %q", a.toast.Text(), round.MsgIncorrect)
	}
	if a.reward.Visible() {
		t.Error("reward should stay hidden after an incorrect guess")
	}
	if !strings.Contains(a.progressLabel.Text, "Incorrect Words: 1") {
		t.Errorf("progress not updated: %q", a.progressLabel.Text)
	}
}

func TestSubsetSelection(t *testing.T) {
	a, speaker := newTestApplication(t, "apple\n")

	a.subsetSelect.SetSelected("correctWords")
	if a.controller.Subset() != classifier.Correct {
		t.Fatalf("subset = %s, want correctWords", a.controller.Subset())
	}

	test.Tap(a.pronounceBtn)
	if a.toast.Text() != round.MsgEmptySubset {
		t.Errorf("toast = %q, want %q", a.toast.Text(), round.MsgEmptySubset)
	}
	if speaker.Count() != 0 {
		t.Error("nothing should be spoken from an empty list")
	}
}

func TestResetConfirmation(t *testing.T) {
	a, speaker := newTestApplication(t, "apple\n")

	test.Tap(a.pronounceBtn)
	a.guessEntry.SetText("apple")
	test.Tap(a.submitBtn)

	a.onResetConfirmed(false)
	if a.controller.Snapshot().Correct != 1 {
		t.Error("cancelled reset must not change progress")
	}

	a.onResetConfirmed(true)
	want := round.FormatProgress(classifier.Snapshot{Total: 1, NeverTried: 1})
	if a.progressLabel.Text != want {
		t.Errorf("progress = %q, want %q", a.progressLabel.Text, want)
	}
	if speaker.Count() != 2 {
		t.Errorf("spoken %d words, want 2 (reset pronounces the next word)", speaker.Count())
	}
}

func TestShortcutRunes(t *testing.T) {
	a, speaker := newTestApplication(t, "apple\n")

	a.handleShortcutRune('r')
	if a.toast.Text() != round.MsgNoActiveWord {
		t.Errorf("toast = %q, want %q", a.toast.Text(), round.MsgNoActiveWord)
	}

	a.handleShortcutRune('p')
	a.handleShortcutRune('R')
	if speaker.Count() != 2 {
		t.Errorf("spoken %d words, want 2", speaker.Count())
	}
}

func TestLogViewerWrite(t *testing.T) {
	v := NewLogViewer()

	fmt.Fprintf(v, "level=INFO msg=first\nlevel=WARN msg=second\n")
	v.Write([]byte("\n"))

	messages := v.Messages()
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if !strings.HasSuffix(messages[0], "msg=second") {
		t.Errorf("newest message should come first, got %q", messages[0])
	}

	v.maxMessages = 1
	v.AddMessage("third")
	if got := v.Messages(); len(got) != 1 || !strings.HasSuffix(got[0], "third") {
		t.Errorf("messages not trimmed: %v", got)
	}

	v.Clear()
	if len(v.Messages()) != 0 {
		t.Error("Clear() should remove all messages")
	}
}

func TestGuessEntryEscape(t *testing.T) {
	e := NewGuessEntry()
	escaped := false
	e.SetOnEscape(func() { escaped = true })

	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if !escaped {
		t.Error("Escape callback not called")
	}
}
