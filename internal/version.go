package internal

// Version is the current spellbee release.
const Version = "0.3.1"
