package intread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		input   string
		want    int64
		reason  Reason
		message string
	}{
		{"numerator accepts value", NumeratorRule, "10", 10, "", ""},
		{"numerator accepts zero", NumeratorRule, "0", 0, "", ""},
		{"numerator rejects malformed", NumeratorRule, "ten", 0, ReasonMalformed, NumeratorRule.InvalidMessage},
		{"numerator rejects leading zero", NumeratorRule, "010", 0, ReasonMalformed, NumeratorRule.InvalidMessage},

		{"denominator accepts value", DenominatorRule, "2", 2, "", ""},
		{"denominator accepts negative", DenominatorRule, "-3", -3, "", ""},
		{"denominator rejects zero", DenominatorRule, "0", 0, ReasonZero, ">> Invalid input. A denominator of 0 is not allowed."},
		{"denominator rejects malformed", DenominatorRule, "x", 0, ReasonMalformed, ">> Invalid input. Only integers are allowed."},
		{"denominator treats -0 as malformed", DenominatorRule, "-0", 0, ReasonMalformed, ">> Invalid input. Only integers are allowed."},
		{"denominator treats 00 as malformed", DenominatorRule, "00", 0, ReasonMalformed, ">> Invalid input. Only integers are allowed."},

		{"non-zero accepts positive", NonZeroRule, "3", 3, "", ""},
		{"non-zero accepts negative", NonZeroRule, "-4", -4, "", ""},
		{"non-zero rejects zero", NonZeroRule, "0", 0, ReasonZero, NonZeroRule.InvalidMessage},
		{"non-zero rejects malformed", NonZeroRule, "", 0, ReasonMalformed, NonZeroRule.InvalidMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rej := Validate(tt.input, tt.rule)
			if tt.reason == "" {
				require.Nil(t, rej)
				assert.Equal(t, tt.want, got)
				return
			}
			require.NotNil(t, rej)
			assert.Equal(t, tt.reason, rej.Reason)
			assert.Equal(t, tt.message, rej.Message)
		})
	}
}

func TestValidate_ZeroAfterCanonicalCheck(t *testing.T) {
	rule := Rule{
		Name:           "custom",
		InvalidMessage: "bad",
		ZeroMessage:    "no zero",
	}

	_, rej := Validate("0", rule)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonZero, rej.Reason)
	assert.Equal(t, "no zero", rej.Message)

	_, rej = Validate("0x", rule)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonMalformed, rej.Reason)
}
