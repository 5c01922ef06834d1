package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"codeberg.org/snonux/spellbee/internal/classifier"
	"codeberg.org/snonux/spellbee/internal/round"
)

const prompt = "> "

const reward = `  / \__
 (    @\___   Woof! Well done!
 /         O
/   (_____/
/_____/   U`

const helpText = `Commands:
  /say             pronounce a new word from the selected list
  /repeat          pronounce the current word again
  /list <name>     select a word list (%s)
  /lists           show all word lists with their sizes
  /progress        show progress
  /reset           mark every word as never tried
  /help            show this help
  /quit            leave spellbee
Anything else is a guess for the current word.`

var _ round.Presenter = (*Console)(nil)

// Console is a line-oriented front end reading commands and guesses
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	controller *round.Controller
	words      *classifier.Classifier

	rewardVisible bool
}

// New creates a console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Attach connects the console to the round it drives
func (c *Console) Attach(controller *round.Controller, words *classifier.Classifier) {
	c.controller = controller
	c.words = words
}

// ShowProgress prints the progress counter
func (c *Console) ShowProgress(snapshot classifier.Snapshot) {
	fmt.Fprintf(c.out, "%s\n", round.FormatProgress(snapshot))
}

// ShowToast prints a notice
func (c *Console) ShowToast(message string) {
	fmt.Fprintf(c.out, "*** %s ***\n", message)
}

// SetRewardVisible prints the reward when it becomes visible
func (c *Console) SetRewardVisible(visible bool) {
	if visible && !c.rewardVisible {
		fmt.Fprintln(c.out, reward)
	}
	c.rewardVisible = visible
}

// ClearGuess does nothing; the terminal line is consumed on Enter
func (c *Console) ClearGuess() {}

// Run reads lines until /quit, end of input or ctx is cancelled
func (c *Console) Run(ctx context.Context) error {
	if c.controller == nil {
		return errors.New("console not attached to a round")
	}

	fmt.Fprintln(c.out, "Welcome to spellbee! Type /say to hear a word, /help for all commands.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		if quit := c.handle(line); quit {
			fmt.Fprintln(c.out, "Bye!")
			return nil
		}
	}
}

func (c *Console) readLine() (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// handle processes one input line and reports whether to quit
func (c *Console) handle(line string) bool {
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		c.guess(line)
		return false
	}

	fields := strings.Fields(line)
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "/say", "/pronounce", "/p":
		c.logError(c.controller.PronounceNext())
	case "/repeat", "/r":
		c.logError(c.controller.Repeat())
	case "/list":
		c.selectList(args)
	case "/lists":
		c.showLists()
	case "/progress":
		c.controller.Refresh()
	case "/reset":
		c.reset()
	case "/help", "/h", "/?":
		c.help()
	case "/quit", "/exit", "/q":
		return true
	default:
		fmt.Fprintf(c.out, "Unknown command %s. Type /help for a list of commands.\n", command)
	}
	return false
}

func (c *Console) guess(text string) {
	_, err := c.controller.SubmitGuess(text)
	c.logError(err)
}

func (c *Console) selectList(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(c.out, "Usage: /list <name>, where name is one of: %s\n", strings.Join(classifier.SubsetNames(), ", "))
		return
	}

	subset, err := classifier.ParseSubset(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Unknown word list %q. Choose one of: %s\n", args[0], strings.Join(classifier.SubsetNames(), ", "))
		return
	}

	c.controller.SelectSubset(subset)
	fmt.Fprintf(c.out, "Word list: %s\n", subset)
}

func (c *Console) showLists() {
	selected := c.controller.Subset()
	for _, subset := range classifier.Subsets() {
		marker := " "
		if subset == selected {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-16s %d\n", marker, subset, c.words.Subset(subset).Len())
	}
}

func (c *Console) reset() {
	fmt.Fprintf(c.out, "%s %s [y/N] ", round.ConfirmTitle+":", round.ConfirmResetText)
	if !c.in.Scan() {
		return
	}

	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(c.out, "Reset cancelled.")
		return
	}
	c.logError(c.controller.ResetAll())
}

func (c *Console) help() {
	fmt.Fprintf(c.out, helpText+"\n", strings.Join(classifier.SubsetNames(), ", "))
}

// logError records expected round errors. The controller has already
// shown a notice for them.
func (c *Console) logError(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, round.ErrEmptySubset) || errors.Is(err, round.ErrNoActiveWord) {
		slog.Debug("round notice", "error", err)
		return
	}
	slog.Error("round operation failed", "error", err)
	fmt.Fprintf(c.out, "Error: %v\n", err)
}
