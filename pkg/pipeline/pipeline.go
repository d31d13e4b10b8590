package pipeline

import "github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"

// Step is one in-place transformation of a table.
type Step interface {
	Name() string
	Apply(t *table.Table) *table.Table
}

// StepFunc adapts a function into a Step.
type StepFunc struct {
	StepName string
	Fn       func(t *table.Table) *table.Table
}

func (s StepFunc) Name() string { return s.StepName }
func (s StepFunc) Apply(t *table.Table) *table.Table { return s.Fn(t) }

// Pipeline chains steps in a fixed order.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Names lists the steps in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Run applies every step in order, feeding each the previous step's output.
func (p *Pipeline) Run(t *table.Table) *table.Table {
	for _, step := range p.steps {
		t = step.Apply(t)
	}
	return t
}
