package alternatives

// FlagRule describes the translation of one flag from the original tool to the alternate tool.
// - Original: the flag exactly as the original tool expects it (e.g., -name).
// - New: the alternate tool's flag or short replacement command (e.g., -t empty).
// - Note: optional explanation or worked example; may be empty.
// - Consume: how many following arguments the original flag takes as its operand.
type FlagRule struct {
	Original string `yaml:"flag"`
	New      string `yaml:"replacement"`
	Note     string `yaml:"note"`
	Consume  int    `yaml:"consume"`
}

// AlternativeSpec maps an original tool to its alternate tool.
// Rules are kept in registration order; several rules may share the same Original flag.
type AlternativeSpec struct {
	Original       string     `yaml:"original"`
	Alternate      string     `yaml:"alternate"`
	FurtherReading string     `yaml:"further_reading"`
	Rules          []FlagRule `yaml:"flags"`
}

// Index groups the rules by original flag. One flag can fan out to several
// alternate renderings, so each value keeps the rules in registration order.
func (s AlternativeSpec) Index() map[string][]FlagRule {
	index := make(map[string][]FlagRule, len(s.Rules))
	for _, rule := range s.Rules {
		index[rule.Original] = append(index[rule.Original], rule)
	}
	return index
}
