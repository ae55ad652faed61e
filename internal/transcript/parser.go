package transcript

import (
	"regexp"
	"strings"
)

// space matches the characters a marker line may be padded with. It is wider
// than RE2's \s so non-breaking and other Unicode spaces are accepted.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// digits accepts any decimal digit, not only ASCII; the label keeps the
// digits as written.
const digits = `(\p{Nd}+)`

var (
	questionMarker = regexp.MustCompile(`^` + space + `*Q` + digits + space + `*:` + space + `*(.*)$`)
	answerMarker   = regexp.MustCompile(`^` + space + `*A` + digits + space + `*:` + space + `*(.*)$`)
)

// Marker is a recognized turn-opening line.
type Marker struct {
	Kind  Kind
	Label string
	// Rest is the text after the colon on the marker line.
	Rest string
}

// Classify reports whether line opens a turn. Matching is case-sensitive:
// "q1:" is ordinary text.
func Classify(line string) (Marker, bool) {
	if m := questionMarker.FindStringSubmatch(line); m != nil {
		return Marker{Kind: Question, Label: "Q" + m[1], Rest: m[2]}, true
	}
	if m := answerMarker.FindStringSubmatch(line); m != nil {
		return Marker{Kind: Answer, Label: "A" + m[1], Rest: m[2]}, true
	}
	return Marker{}, false
}

// State is the parser state between lines. The zero value is the NoneOpen
// state: no turn has started and lines are discarded. Once a marker is seen
// the state is Accumulating and holds the open turn's lines.
type State struct {
	open   bool
	kind   Kind
	label  string
	buffer []string
}

// Accumulating reports whether a turn is open.
func (s State) Accumulating() bool { return s.open }

// Step is the transition function for one physical line. It returns the next
// state and, when the line closes the open turn, that completed turn. A
// State must not be stepped twice; its buffer is shared with the successor.
func Step(s State, line string) (State, *Turn) {
	if marker, ok := Classify(line); ok {
		closed, hadOpen := Flush(s)
		next := State{open: true, kind: marker.Kind, label: marker.Label, buffer: []string{marker.Rest}}
		if hadOpen {
			return next, &closed
		}
		return next, nil
	}
	if !s.open {
		return s, nil
	}
	s.buffer = append(s.buffer, line)
	return s, nil
}

// Flush closes the open turn, joining its lines with "\n" and trimming
// surrounding whitespace. It reports false in the NoneOpen state.
func Flush(s State) (Turn, bool) {
	if !s.open {
		return Turn{}, false
	}
	return Turn{
		Kind:  s.kind,
		Label: s.label,
		Text:  strings.TrimSpace(strings.Join(s.buffer, "\n")),
	}, true
}

// Parser accumulates turns line by line.
type Parser struct {
	state State
	turns []Turn
}

// Feed consumes one physical line without its terminator.
func (p *Parser) Feed(line string) {
	next, closed := Step(p.state, line)
	if closed != nil {
		p.turns = append(p.turns, *closed)
	}
	p.state = next
}

// Finish flushes the open turn and returns every turn in transcript order.
// The parser is reset afterwards.
func (p *Parser) Finish() []Turn {
	if last, ok := Flush(p.state); ok {
		p.turns = append(p.turns, last)
	}
	turns := p.turns
	p.state = State{}
	p.turns = nil
	return turns
}

// Parse segments normalized transcript text into turns. Text before the first
// marker is discarded; labels are kept as written without sequence checks.
func Parse(text string) []Turn {
	var p Parser
	for _, line := range SplitLines(text) {
		p.Feed(line)
	}
	return p.Finish()
}
