package gui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogViewer is a widget that displays log messages. It implements
// io.Writer so it can sit behind a slog handler.
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu          sync.Mutex
	messages    []string
	maxMessages int
	live        bool
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{
		maxMessages: 500,
		messages:    make([]string, 0),
	}

	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable() // read-only
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 120))
	v.scrollView.Direction = container.ScrollBoth

	v.container = container.NewBorder(
		widget.NewLabel("Activity (newest first):"),
		nil,
		nil,
		nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// Write implements io.Writer, one message per line
func (v *LogViewer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			v.AddMessage(line)
		}
	}
	return len(p), nil
}

// GoLive starts pushing messages to the screen. It must run on the
// fyne main goroutine once the app has started.
func (v *LogViewer) GoLive() {
	v.mu.Lock()
	v.live = true
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	v.render(text)
}

// AddMessage adds a message to the log
func (v *LogViewer) AddMessage(message string) {
	timestamp := time.Now().Format("15:04:05")
	fullMessage := fmt.Sprintf("[%s] %s", timestamp, message)

	v.mu.Lock()
	// Newest first
	v.messages = append([]string{fullMessage}, v.messages...)
	if len(v.messages) > v.maxMessages {
		v.messages = v.messages[:v.maxMessages]
	}
	live := v.live
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	if live {
		fyne.Do(func() { v.render(text) })
	}
}

// Messages returns a copy of the messages, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return append([]string(nil), v.messages...)
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = v.messages[:0]
	live := v.live
	v.mu.Unlock()

	if live {
		fyne.Do(func() { v.render("") })
	}
}

func (v *LogViewer) render(text string) {
	v.logEntry.SetText(text)
	v.scrollView.Offset = fyne.NewPos(0, 0)
	v.scrollView.Refresh()
}
