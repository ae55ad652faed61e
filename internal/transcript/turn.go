package transcript

// Kind distinguishes interviewer questions from interviewee answers.
type Kind int

const (
	Question Kind = iota + 1
	Answer
)

func (k Kind) String() string {
	switch k {
	case Question:
		return "question"
	case Answer:
		return "answer"
	default:
		return "unknown"
	}
}

// Role names the speaker of a turn of this kind.
func (k Kind) Role() string {
	if k == Question {
		return "interviewer"
	}
	return "interviewee"
}

// Turn is one labeled utterance, e.g. Q3 or A7.
type Turn struct {
	Kind  Kind
	Label string
	Text  string
}

// Count tallies question and answer turns.
func Count(turns []Turn) (questions, answers int) {
	for _, turn := range turns {
		switch turn.Kind {
		case Question:
			questions++
		case Answer:
			answers++
		}
	}
	return questions, answers
}
