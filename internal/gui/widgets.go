package gui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RewardIndicator shows the dancing dog after a correct guess
type RewardIndicator struct {
	widget.BaseWidget

	container *fyne.Container
	image     *canvas.Image
	label     *widget.Label
}

// NewRewardIndicator creates a hidden reward indicator
func NewRewardIndicator() *RewardIndicator {
	r := &RewardIndicator{}

	r.image = canvas.NewImageFromResource(GetRewardImage())
	r.image.FillMode = canvas.ImageFillContain
	r.image.SetMinSize(fyne.NewSize(160, 160))

	r.label = widget.NewLabel("Woof! Well done!")
	r.label.Alignment = fyne.TextAlignCenter

	r.container = container.NewBorder(nil, r.label, nil, nil, r.image)

	r.ExtendBaseWidget(r)
	r.Hide()
	return r
}

// CreateRenderer implements fyne.Widget
func (r *RewardIndicator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.container)
}

// SetVisible shows or hides the indicator
func (r *RewardIndicator) SetVisible(visible bool) {
	if visible {
		r.Show()
	} else {
		r.Hide()
	}
}

// Toast is a label that hides itself after a while
type Toast struct {
	widget.BaseWidget

	label    *widget.Label
	duration time.Duration

	mu         sync.Mutex
	generation int
}

// NewToast creates a hidden toast that stays up for duration
func NewToast(duration time.Duration) *Toast {
	t := &Toast{duration: duration}

	t.label = widget.NewLabel("")
	t.label.Alignment = fyne.TextAlignCenter
	t.label.TextStyle = fyne.TextStyle{Bold: true}
	t.label.Importance = widget.HighImportance

	t.ExtendBaseWidget(t)
	t.Hide()
	return t
}

// CreateRenderer implements fyne.Widget
func (t *Toast) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.label)
}

// ShowMessage displays message until the duration elapses or another message replaces it
func (t *Toast) ShowMessage(message string) {
	t.mu.Lock()
	t.generation++
	generation := t.generation
	t.mu.Unlock()

	t.label.SetText(message)
	t.Show()

	if t.duration <= 0 {
		return
	}
	time.AfterFunc(t.duration, func() {
		fyne.Do(func() {
			t.mu.Lock()
			current := t.generation == generation
			t.mu.Unlock()
			if current {
				t.Hide()
			}
		})
	})
}

// Text returns the message on display
func (t *Toast) Text() string {
	return t.label.Text
}
