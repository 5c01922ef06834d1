package testutil

import (
	"context"
	"sync"

	"codeberg.org/snonux/spellbee/internal/classifier"
)

// RecordingSpeaker records every word it is asked to speak
type RecordingSpeaker struct {
	mu sync.Mutex

	Spoken        []string
	InitErr       error
	Initialized   bool
	ShutdownCalls int
	SpeakerName   string
}

// Initialize records the call and returns InitErr
func (s *RecordingSpeaker) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.InitErr != nil {
		return s.InitErr
	}
	s.Initialized = true
	return nil
}

// Speak records text
func (s *RecordingSpeaker) Speak(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Spoken = append(s.Spoken, text)
}

// Shutdown counts the call
func (s *RecordingSpeaker) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ShutdownCalls++
	return nil
}

// Name returns SpeakerName or "recorder"
func (s *RecordingSpeaker) Name() string {
	if s.SpeakerName == "" {
		return "recorder"
	}
	return s.SpeakerName
}

// Last returns the most recently spoken word
func (s *RecordingSpeaker) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Spoken) == 0 {
		return ""
	}
	return s.Spoken[len(s.Spoken)-1]
}

// Count returns how many words were spoken
func (s *RecordingSpeaker) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.Spoken)
}

// MemoryPresenter keeps everything the round controller shows in memory
type MemoryPresenter struct {
	Progress      []classifier.Snapshot
	Toasts        []string
	RewardVisible bool
	RewardChanges int
	GuessClears   int
}

// ShowProgress records the snapshot
func (p *MemoryPresenter) ShowProgress(snapshot classifier.Snapshot) {
	p.Progress = append(p.Progress, snapshot)
}

// ShowToast records the message
func (p *MemoryPresenter) ShowToast(message string) {
	p.Toasts = append(p.Toasts, message)
}

// SetRewardVisible records the reward indicator state
func (p *MemoryPresenter) SetRewardVisible(visible bool) {
	p.RewardVisible = visible
	p.RewardChanges++
}

// ClearGuess counts guess entry resets
func (p *MemoryPresenter) ClearGuess() {
	p.GuessClears++
}

// LastProgress returns the most recent snapshot shown
func (p *MemoryPresenter) LastProgress() classifier.Snapshot {
	if len(p.Progress) == 0 {
		return classifier.Snapshot{}
	}
	return p.Progress[len(p.Progress)-1]
}

// LastToast returns the most recent toast
func (p *MemoryPresenter) LastToast() string {
	if len(p.Toasts) == 0 {
		return ""
	}
	return p.Toasts[len(p.Toasts)-1]
}
