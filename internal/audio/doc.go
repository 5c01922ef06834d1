// Package audio pronounces words for the learner. Speakers are
// fire-and-forget: Speak returns immediately, synthesis and playback run
// in the background, and a new Speak interrupts whatever is still
// playing. Local speech comes from espeak-ng; OpenAI and Gemini voices
// are synthesized remotely, cached on disk and played with a local
// player.
package audio
