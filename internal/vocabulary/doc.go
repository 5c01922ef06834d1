// Package vocabulary loads the fixed master word list the learner
// practises with. The list is read once at startup from a newline
// delimited UTF-8 asset and never changes afterwards.
package vocabulary
