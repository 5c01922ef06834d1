// Package console implements the terminal front end for spellbee. Plain
// input lines are guesses; lines starting with a slash are commands.
package console
