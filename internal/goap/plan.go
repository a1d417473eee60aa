package goap

// Plan is an ordered, costed chain of actions the planner has
// determined will satisfy one goal. NextAction offers an iterator-style
// walk through Steps: it yields each action once, in order, then nil
// forever after.
type Plan struct {
	Goal  Goal
	Steps []*Action
	Cost  uint32

	cursor int
}

// NextAction returns the next unconsumed step, or nil once every step
// has been returned once.
func (p *Plan) NextAction() *Action {
	if p.cursor >= len(p.Steps) {
		return nil
	}
	a := p.Steps[p.cursor]
	p.cursor++
	return a
}

// Len returns the number of steps in the plan.
func (p *Plan) Len() int { return len(p.Steps) }
