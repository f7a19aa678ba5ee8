package intread

// Reason classifies why a token was rejected.
type Reason string

const (
	// ReasonMalformed means the text is not canonical integer text.
	ReasonMalformed Reason = "malformed"

	// ReasonZero means the text is a zero where zero is not allowed.
	ReasonZero Reason = "zero"
)

// Rule describes which tokens a prompt accepts and what to say otherwise.
type Rule struct {
	// Name identifies the rule in logs.
	Name string

	// InvalidMessage is printed for malformed text.
	InvalidMessage string

	// AllowZero accepts a canonical "0".
	AllowZero bool

	// ZeroMessage is printed for a rejected zero.
	// Falls back to InvalidMessage when empty.
	ZeroMessage string

	// ZeroFirst rejects the literal text "0" before the canonical check.
	// Only meaningful when AllowZero is false.
	ZeroFirst bool
}

// Rejection explains why Validate refused a token.
type Rejection struct {
	Reason  Reason
	Message string
}

// Predefined rules used by the drills.
var (
	NumeratorRule = Rule{
		Name:           "numerator",
		InvalidMessage: ">> Invalid input. Only integers are allowed.",
		AllowZero:      true,
	}

	DenominatorRule = Rule{
		Name:           "denominator",
		InvalidMessage: ">> Invalid input. Only integers are allowed.",
		ZeroMessage:    ">> Invalid input. A denominator of 0 is not allowed.",
		ZeroFirst:      true,
	}

	NonZeroRule = Rule{
		Name:           "non_zero",
		InvalidMessage: ">> Invalid input. Only non-zero integers are allowed.",
	}
)

// Validate judges text against rule. It returns the parsed value, or a
// non-nil Rejection when the text is refused.
func Validate(text string, rule Rule) (int64, *Rejection) {
	if !rule.AllowZero && rule.ZeroFirst && text == "0" {
		return 0, rule.zeroRejection()
	}

	n, ok := ParseCanonical(text)
	if !ok {
		return 0, &Rejection{Reason: ReasonMalformed, Message: rule.InvalidMessage}
	}

	if n == 0 && !rule.AllowZero {
		return 0, rule.zeroRejection()
	}

	return n, nil
}

func (r Rule) zeroRejection() *Rejection {
	msg := r.ZeroMessage
	if msg == "" {
		msg = r.InvalidMessage
	}
	return &Rejection{Reason: ReasonZero, Message: msg}
}
