package round

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/testutil"
	"codeberg.org/snonux/spellbee/internal/vocabulary"
)

type fixture struct {
	ctrl      *Controller
	words     *classifier.Classifier
	speaker   *testutil.RecordingSpeaker
	presenter *testutil.MemoryPresenter
}

func newFixture(t *testing.T, asset string, seed int64) *fixture {
	t.Helper()

	store, err := vocabulary.Load(strings.NewReader(asset))
	require.NoError(t, err)

	f := &fixture{
		words:     classifier.New(store),
		speaker:   &testutil.RecordingSpeaker{},
		presenter: &testutil.MemoryPresenter{},
	}
	f.ctrl = New(f.words, f.speaker, f.presenter, rand.New(rand.NewSource(seed)))
	f.ctrl.Refresh()
	return f
}

const catDogHouse = "cat\ndog\nhouse\n"

// first correct guess
func TestScenarioFirstCorrectGuess(t *testing.T) {
	f := newFixture(t, catDogHouse, 1)

	assert.Equal(t, classifier.Snapshot{Total: 3, NeverTried: 3}, f.presenter.LastProgress())
	assert.Equal(t, classifier.NeverTried, f.ctrl.Subset())

	require.NoError(t, f.ctrl.PronounceNext())
	spoken := f.speaker.Last()
	assert.Contains(t, []string{"cat", "dog", "house"}, spoken)

	current, ok := f.ctrl.CurrentWord()
	require.True(t, ok)
	assert.Equal(t, spoken, current)

	correct, err := f.ctrl.SubmitGuess("  " + strings.ToUpper(spoken) + "  ")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, MsgCorrect, f.presenter.LastToast())
	assert.True(t, f.presenter.RewardVisible)
	assert.Equal(t, classifier.Snapshot{Total: 3, Correct: 1, NeverTried: 2}, f.presenter.LastProgress())
	assert.Equal(t, 1, f.presenter.GuessClears)
}

// incorrect, then corrected from the incorrect list
func TestScenarioIncorrectThenCorrected(t *testing.T) {
	f := newFixture(t, catDogHouse, 7)

	require.NoError(t, f.ctrl.PronounceNext())
	first := f.speaker.Last()
	_, err := f.ctrl.SubmitGuess(first)
	require.NoError(t, err)

	f.ctrl.SelectSubset(classifier.NeverTried)
	require.NoError(t, f.ctrl.PronounceNext())
	second := f.speaker.Last()
	assert.NotEqual(t, first, second, "never tried list must not offer a classified word")

	correct, err := f.ctrl.SubmitGuess(second + "x")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, MsgIncorrect, f.presenter.LastToast())
	assert.Equal(t, classifier.Snapshot{Total: 3, Correct: 1, Incorrect: 1, NeverTried: 1}, f.presenter.LastProgress())

	f.ctrl.SelectSubset(classifier.Incorrect)
	require.NoError(t, f.ctrl.PronounceNext())
	assert.Equal(t, second, f.speaker.Last())

	correct, err = f.ctrl.SubmitGuess(second)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, classifier.Snapshot{Total: 3, Correct: 2, NeverTried: 1}, f.presenter.LastProgress())
}

// pronounce against an empty list
func TestScenarioEmptySubset(t *testing.T) {
	f := newFixture(t, catDogHouse, 3)

	f.ctrl.SelectSubset(classifier.Correct)
	err := f.ctrl.PronounceNext()

	assert.ErrorIs(t, err, ErrEmptySubset)
	assert.Equal(t, MsgEmptySubset, f.presenter.LastToast())
	assert.Zero(t, f.speaker.Count())
	_, ok := f.ctrl.CurrentWord()
	assert.False(t, ok)
	assert.Equal(t, classifier.Snapshot{Total: 3, NeverTried: 3}, f.ctrl.Snapshot())
}

func TestEmptySubsetKeepsCurrentWord(t *testing.T) {
	f := newFixture(t, catDogHouse, 3)

	require.NoError(t, f.ctrl.PronounceNext())
	before, _ := f.ctrl.CurrentWord()

	f.ctrl.SelectSubset(classifier.Incorrect)
	assert.ErrorIs(t, f.ctrl.PronounceNext(), ErrEmptySubset)

	after, ok := f.ctrl.CurrentWord()
	assert.True(t, ok)
	assert.Equal(t, before, after)
}

// reset pronounces immediately against the current selection
func TestScenarioReset(t *testing.T) {
	f := newFixture(t, catDogHouse, 11)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.ctrl.PronounceNext())
		word := f.speaker.Last()
		guess := word
		if i == 1 {
			guess = "nope"
		}
		_, err := f.ctrl.SubmitGuess(guess)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, f.ctrl.Snapshot().NeverTried)

	spokenBefore := f.speaker.Count()
	require.NoError(t, f.ctrl.ResetAll())

	assert.Equal(t, classifier.Snapshot{Total: 3, NeverTried: 3}, f.ctrl.Snapshot())
	assert.Contains(t, f.presenter.Progress, classifier.Snapshot{Total: 3, NeverTried: 3})
	assert.Equal(t, spokenBefore+1, f.speaker.Count(), "reset must trigger a pronunciation")
	assert.False(t, f.presenter.RewardVisible)

	current, ok := f.ctrl.CurrentWord()
	assert.True(t, ok)
	assert.Equal(t, f.speaker.Last(), current)
}

func TestResetOnEmptySelectionClearsCurrentWord(t *testing.T) {
	f := newFixture(t, catDogHouse, 5)

	require.NoError(t, f.ctrl.PronounceNext())
	f.ctrl.SelectSubset(classifier.Correct)

	err := f.ctrl.ResetAll()
	assert.ErrorIs(t, err, ErrEmptySubset)
	_, ok := f.ctrl.CurrentWord()
	assert.False(t, ok)
	assert.Equal(t, MsgEmptySubset, f.presenter.LastToast())
}

// duplicate asset lines
func TestScenarioDuplicateLines(t *testing.T) {
	f := newFixture(t, "apple\napple\nbanana\n", 1)

	assert.Equal(t, classifier.Snapshot{Total: 2, NeverTried: 2}, f.presenter.LastProgress())
}

// case and whitespace tolerance
func TestScenarioCaseAndWhitespace(t *testing.T) {
	f := newFixture(t, "House\n", 1)

	require.NoError(t, f.ctrl.PronounceNext())
	require.Equal(t, "House", f.speaker.Last())

	correct, err := f.ctrl.SubmitGuess("\tHOUSE\n")
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestSubmitWithoutActiveWord(t *testing.T) {
	f := newFixture(t, catDogHouse, 1)

	correct, err := f.ctrl.SubmitGuess("cat")
	assert.False(t, correct)
	assert.ErrorIs(t, err, ErrNoActiveWord)
	assert.Equal(t, MsgNoActiveWord, f.presenter.LastToast())
	assert.Equal(t, classifier.Snapshot{Total: 3, NeverTried: 3}, f.ctrl.Snapshot())
	assert.Zero(t, f.presenter.GuessClears)
}

func TestIncorrectGuessLeavesRewardUntouched(t *testing.T) {
	f := newFixture(t, "cat\n", 1)
	f.ctrl.SelectSubset(classifier.All)

	require.NoError(t, f.ctrl.PronounceNext())
	_, err := f.ctrl.SubmitGuess("cat")
	require.NoError(t, err)
	require.True(t, f.presenter.RewardVisible)

	changes := f.presenter.RewardChanges
	_, err = f.ctrl.SubmitGuess("kat")
	require.NoError(t, err)
	assert.True(t, f.presenter.RewardVisible)
	assert.Equal(t, changes, f.presenter.RewardChanges)

	// hidden again right before the next pronunciation
	require.NoError(t, f.ctrl.PronounceNext())
	assert.False(t, f.presenter.RewardVisible)
}

func TestGuessUsesMostRecentWord(t *testing.T) {
	f := newFixture(t, catDogHouse, 99)
	f.ctrl.SelectSubset(classifier.All)

	require.NoError(t, f.ctrl.PronounceNext())
	require.NoError(t, f.ctrl.PronounceNext())
	latest := f.speaker.Last()

	correct, err := f.ctrl.SubmitGuess(latest)
	require.NoError(t, err)
	assert.True(t, correct)

	state, err := f.words.StateOf(latest)
	require.NoError(t, err)
	assert.Equal(t, classifier.Correct, state)
}

func TestRepeat(t *testing.T) {
	f := newFixture(t, catDogHouse, 1)

	assert.ErrorIs(t, f.ctrl.Repeat(), ErrNoActiveWord)
	assert.Zero(t, f.speaker.Count())

	require.NoError(t, f.ctrl.PronounceNext())
	word := f.speaker.Last()
	require.NoError(t, f.ctrl.Repeat())

	assert.Equal(t, []string{word, word}, f.speaker.Spoken)
	assert.Equal(t, classifier.Snapshot{Total: 3, NeverTried: 3}, f.ctrl.Snapshot())
}

func TestSelectInvalidSubsetFallsBack(t *testing.T) {
	f := newFixture(t, catDogHouse, 1)

	f.ctrl.SelectSubset(classifier.Incorrect)
	f.ctrl.SelectSubset(classifier.Subset(42))
	assert.Equal(t, classifier.NeverTried, f.ctrl.Subset())
}

func TestSeededDrawsAreReproducible(t *testing.T) {
	a := newFixture(t, catDogHouse, 2024)
	b := newFixture(t, catDogHouse, 2024)
	a.ctrl.SelectSubset(classifier.All)
	b.ctrl.SelectSubset(classifier.All)

	for i := 0; i < 20; i++ {
		require.NoError(t, a.ctrl.PronounceNext())
		require.NoError(t, b.ctrl.PronounceNext())
	}
	assert.Equal(t, a.speaker.Spoken, b.speaker.Spoken)
}

func TestDrawsAreUniform(t *testing.T) {
	f := newFixture(t, catDogHouse, 12345)
	f.ctrl.SelectSubset(classifier.All)

	const draws = 3000
	for i := 0; i < draws; i++ {
		require.NoError(t, f.ctrl.PronounceNext())
	}

	counts := make(map[string]int)
	for _, w := range f.speaker.Spoken {
		counts[w]++
	}
	require.Len(t, counts, 3)
	for w, n := range counts {
		assert.InDelta(t, draws/3, n, 150, "word %q drawn %d times", w, n)
	}
}

func TestNilRNGIsSeeded(t *testing.T) {
	store, err := vocabulary.Load(strings.NewReader(catDogHouse))
	require.NoError(t, err)

	ctrl := New(classifier.New(store), &testutil.RecordingSpeaker{}, &testutil.MemoryPresenter{}, nil)
	assert.NoError(t, ctrl.PronounceNext())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		guess string
		word  string
		want  bool
	}{
		{"cat", "cat", true},
		{"  CAT  ", "cat", true},
		{"\tHOUSE\n", "House", true},
		{"dgo", "dog", false},
		{"", "dog", false},
		{"ice cream", "Ice Cream", true},
		{"icecream", "ice cream", false},
	}

	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.guess, tt.word))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	got := FormatProgress(classifier.Snapshot{Total: 3, Correct: 1, Incorrect: 0, NeverTried: 2})
	want := "Total Words: 3\nCorrect Words: 1\nIncorrect Words: 0\nNever Tried Words: 2"
	assert.Equal(t, want, got)
}
