package sketch

// Controller decides when cross-peeling (spec.md §4.4) should stop. Step is
// called once per decode_step with the identity hashes of items emitted
// during that step (empty if the step emitted nothing); it returns true to
// halt the outer loop. Reset clears all internal state for a fresh decode.
type Controller interface {
	Reset()
	Step(emittedHashes []uint64) (stop bool)
}

// SimpleController stops after Limit consecutive empty steps.
type SimpleController struct {
	Limit       int
	emptyStreak int
}

// NewSimpleController returns a Controller that stops after limit
// consecutive empty decode_steps.
func NewSimpleController(limit int) *SimpleController {
	return &SimpleController{Limit: limit}
}

func (c *SimpleController) Reset() { c.emptyStreak = 0 }

func (c *SimpleController) Step(emitted []uint64) bool {
	if len(emitted) == 0 {
		c.emptyStreak++
	} else {
		c.emptyStreak = 0
	}
	return c.emptyStreak >= c.Limit
}

// TabuController is the default decode controller (spec.md §4.4): it tracks
// a rolling XOR of every emitted item's identity hash across the whole
// decode, and stops the moment that rolling value repeats -- a peeling
// cycle -- or after Limit consecutive empty steps.
type TabuController struct {
	Limit       int
	emptyStreak int
	rolling     uint64
	seen        map[uint64]bool
}

// NewTabuController returns the default tabu-based controller. spec.md §4.4
// names limit=3 as the default.
func NewTabuController(limit int) *TabuController {
	return &TabuController{Limit: limit, seen: map[uint64]bool{}}
}

func (c *TabuController) Reset() {
	c.emptyStreak = 0
	c.rolling = 0
	c.seen = map[uint64]bool{}
}

func (c *TabuController) Step(emitted []uint64) bool {
	if len(emitted) == 0 {
		c.emptyStreak++
		return c.emptyStreak >= c.Limit
	}
	c.emptyStreak = 0
	for _, h := range emitted {
		c.rolling ^= h
	}
	if c.seen[c.rolling] {
		return true
	}
	c.seen[c.rolling] = true
	return false
}
