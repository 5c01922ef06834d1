// Package voices lists the speech voices spellbee can use and, when an
// OpenAI API key is configured, the text-to-speech models available to it.
package voices
