package intake

import (
	"math"
	"strconv"
	"strings"
)

// Answer is the raw submitted value for one node. Choice, text, and numeric
// inputs use Value; multi-select inputs use Values.
type Answer struct {
	Value  string   `json:"value"`
	Values []string `json:"values,omitempty"`
}

// answerValue is the normalized result of validation: exactly one of the
// fields is meaningful, per the node's input kind.
type answerValue struct {
	Text   string
	Number float64
	List   []string
}

// validateAnswer checks the raw answer against the node's declared input
// shape. It never touches the record; a nil error guarantees the returned
// value is safe to apply.
func validateAnswer(n *Node, a Answer) (answerValue, *ValidationError) {
	switch n.Input {
	case InputChoice:
		v := strings.TrimSpace(a.Value)
		if v == "" {
			return answerValue{}, invalid(n.ID, "please select an option")
		}
		if !optionOf(n, v) {
			return answerValue{}, invalid(n.ID, "%q is not one of the available options", v)
		}
		return answerValue{Text: v}, nil

	case InputMulti:
		if len(a.Values) == 0 {
			return answerValue{}, invalid(n.ID, "please select at least one option")
		}
		for _, v := range a.Values {
			if !optionOf(n, v) {
				return answerValue{}, invalid(n.ID, "%q is not one of the available options", v)
			}
		}
		return answerValue{List: a.Values}, nil

	case InputInteger:
		v := strings.TrimSpace(a.Value)
		num, err := strconv.Atoi(v)
		if err != nil {
			return answerValue{}, invalid(n.ID, "please enter a whole number")
		}
		if n.Bounds != nil && (float64(num) < n.Bounds.Min || float64(num) > n.Bounds.Max) {
			return answerValue{}, invalid(n.ID, "value must be between %d and %d",
				int(n.Bounds.Min), int(n.Bounds.Max))
		}
		return answerValue{Number: float64(num)}, nil

	case InputDecimal:
		v := strings.TrimSpace(a.Value)
		num, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
			return answerValue{}, invalid(n.ID, "please enter a number")
		}
		if num < 0 {
			return answerValue{}, invalid(n.ID, "value must not be negative")
		}
		if n.Bounds != nil && (num < n.Bounds.Min || num > n.Bounds.Max) {
			return answerValue{}, invalid(n.ID, "value must be between %g and %g",
				n.Bounds.Min, n.Bounds.Max)
		}
		return answerValue{Number: num}, nil

	case InputText:
		v := strings.TrimSpace(a.Value)
		if v == "" {
			return answerValue{}, invalid(n.ID, "please enter a response")
		}
		return answerValue{Text: v}, nil

	case InputNone:
		return answerValue{}, invalid(n.ID, "this step does not accept an answer")

	default:
		return answerValue{}, invalid(n.ID, "unsupported input kind %q", n.Input)
	}
}

func optionOf(n *Node, v string) bool {
	for _, opt := range n.Options {
		if opt == v {
			return true
		}
	}
	return false
}

// round1 rounds to one decimal place; pack-years is always stored this way.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
