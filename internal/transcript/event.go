package transcript

// Kind identifies what an event represents.
type Kind string

const (
	KindPrompt     Kind = "prompt"
	KindInput      Kind = "input"
	KindReject     Kind = "reject"
	KindNotice     Kind = "notice"
	KindResult     Kind = "result"
	KindEndOfInput Kind = "end_of_input"
)

// Event is one line of a session transcript.
type Event struct {
	Seq  int64  `json:"seq"`
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Recorder receives transcript events as they happen.
type Recorder interface {
	Record(kind Kind, text string)
}

type discard struct{}

func (discard) Record(Kind, string) {}

// Discard is a Recorder that drops everything.
var Discard Recorder = discard{}
