package report

import "terminalist/internal/alternatives"

// Match is one recognized flag from the argument list together with every rule
// registered for it.
type Match struct {
	Flag  string
	Rules []alternatives.FlagRule
}

// Translate scans args left to right and returns a Match for every token that is a
// known original flag, in argument order. Repeated flags yield repeated matches and
// unknown tokens are ignored.
//
// With skipOperands, the tokens consumed by a matched flag (the largest Consume among
// its rules) are skipped, so a flag's value is never read as another flag. A known flag
// sitting in operand position therefore gets no block of its own: `-name -type -name`
// yields two matches, not three. Without skipOperands every known token matches.
func Translate(spec alternatives.AlternativeSpec, args []string, skipOperands bool) []Match {
	index := spec.Index()

	var matches []Match
	for i := 0; i < len(args); i++ {
		rules, ok := index[args[i]]
		if !ok {
			continue
		}
		matches = append(matches, Match{Flag: args[i], Rules: rules})

		if skipOperands {
			i += consumed(rules)
		}
	}
	return matches
}

func consumed(rules []alternatives.FlagRule) int {
	n := 0
	for _, rule := range rules {
		n = max(n, rule.Consume)
	}
	return n
}
