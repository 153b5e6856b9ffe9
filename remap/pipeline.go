package remap

import "fmt"

// Pipeline is an ordered, immutable sequence of stages.
type Pipeline struct {
	stages []Stage
}

// NewPipeline resolves order against rules. Every key in order must have an
// entry in rules (an empty rule list is a valid identity stage); a missing
// entry fails with ErrUnknownStage.
func NewPipeline(order []StageKey, rules map[StageKey][]Rule) (*Pipeline, error) {
	stages := make([]Stage, 0, len(order))
	for i, key := range order {
		rs, ok := rules[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s (step %d)", ErrUnknownStage, key, i+1)
		}
		stages = append(stages, Stage{Key: key, Rules: rs})
	}
	return &Pipeline{stages: stages}, nil
}

// FromStages builds a pipeline directly from stages in traversal order.
func FromStages(stages ...Stage) *Pipeline {
	cp := make([]Stage, len(stages))
	copy(cp, stages)
	return &Pipeline{stages: cp}
}

// Stages returns the stages in traversal order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Domains returns the chain of domain names, e.g. seed, soil, ..., location.
// It is empty for a pipeline without stages.
func (p *Pipeline) Domains() []string {
	if len(p.stages) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.stages)+1)
	out = append(out, p.stages[0].Key.From)
	for _, s := range p.stages {
		out = append(out, s.Key.To)
	}
	return out
}

// Validate checks that adjacent stages connect (each To is the next From)
// and that no stage has overlapping rule sources.
func (p *Pipeline) Validate() error {
	for i, s := range p.stages {
		if i > 0 && p.stages[i-1].Key.To != s.Key.From {
			return fmt.Errorf("%w: %s is followed by %s", ErrBrokenChain, p.stages[i-1].Key, s.Key)
		}
		if a, b, ok := s.Overlaps(); ok {
			return fmt.Errorf("%w in %s: %s and %s", ErrOverlappingRules, s.Key, a.Source, b.Source)
		}
	}
	return nil
}

// Step is one hop of a traced value.
type Step struct {
	Domain string `json:"domain" yaml:"domain"`
	Value  int64  `json:"value" yaml:"value"`
}

// Locate maps a single value through every stage and returns the value seen
// in each domain, starting with x itself.
func (p *Pipeline) Locate(x int64) []Step {
	steps := make([]Step, 0, len(p.stages)+1)
	if len(p.stages) > 0 {
		steps = append(steps, Step{Domain: p.stages[0].Key.From, Value: x})
	}
	for _, s := range p.stages {
		x = MapValue(x, s.Rules)
		steps = append(steps, Step{Domain: s.Key.To, Value: x})
	}
	return steps
}
