package feedback

import "time"

// Helpful answers whether the conversation helped. Empty means unset.
type Helpful string

const (
	HelpfulYes   Helpful = "yes"
	HelpfulNo    Helpful = "no"
	HelpfulUnset Helpful = ""
)

// Feeling captures how the user feels after the conversation. Empty means unset.
type Feeling string

const (
	FeelingBetter Feeling = "better"
	FeelingSame   Feeling = "same"
	FeelingWorse  Feeling = "worse"
	FeelingUnset  Feeling = ""
)

// Feedback is one post-conversation response. The store enforces no
// uniqueness per dialogue; rows accumulate.
type Feedback struct {
	ID         uint
	DialogueID uint
	Helpful    Helpful
	Feeling    Feeling
	CreatedAt  time.Time
}

// Valid reports whether the value is one of the accepted answers.
func (h Helpful) Valid() bool {
	switch h {
	case HelpfulYes, HelpfulNo, HelpfulUnset:
		return true
	}
	return false
}

// Valid reports whether the value is one of the accepted answers.
func (f Feeling) Valid() bool {
	switch f {
	case FeelingBetter, FeelingSame, FeelingWorse, FeelingUnset:
		return true
	}
	return false
}
