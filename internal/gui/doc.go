// Package gui implements the fyne desktop front end for spellbee: word
// list selector, guess entry, pronounce and reset controls, progress
// counter, reward indicator and an activity log fed by slog.
package gui
