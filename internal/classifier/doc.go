// Package classifier tracks how the learner has done on every word of the
// vocabulary. Each word lives in exactly one of three subsets: correct,
// incorrect or never tried. The union of the three is always the full
// vocabulary.
package classifier
