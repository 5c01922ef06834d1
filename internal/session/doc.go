// Package session ties the spellbee components together for one practice
// session. It loads the vocabulary, builds the attempt classifier and
// round controller, initializes speech output and releases it again on
// teardown. Both the GUI and the terminal front end drive a Session.
package session
