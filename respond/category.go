package respond

// Category is the class of a message, each mapped to one canned reply.
type Category int

const (
	Default Category = iota
	Silence
	Question
	Shout
)

const (
	ReplySilence  = "Fine. Be that way!"
	ReplyQuestion = "Sure."
	ReplyShout    = "Whoa, chill out!"
	ReplyDefault  = "Whatever."
)

// Categories lists every category in evaluation order, Default last.
var Categories = []Category{Silence, Question, Shout, Default}

func (c Category) String() string {
	switch c {
	case Silence:
		return "silence"
	case Question:
		return "question"
	case Shout:
		return "shout"
	default:
		return "default"
	}
}

// Reply returns the canned reply for c; unknown values reply like Default.
func (c Category) Reply() string {
	switch c {
	case Silence:
		return ReplySilence
	case Question:
		return ReplyQuestion
	case Shout:
		return ReplyShout
	default:
		return ReplyDefault
	}
}
