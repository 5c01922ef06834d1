// Package round drives one practice round at a time: it draws the next
// word from the selected word list, hands it to the speaker, checks the
// learner's guess and reports progress to the presentation layer.
package round
