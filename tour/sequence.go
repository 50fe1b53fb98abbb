package tour

// sequence is the ordered list of prepared steps with a current-index
// cursor. It performs only bounds-safe cursor arithmetic; interpretation of
// "no further step" (end-of-tour reset) belongs to the Controller. Not safe
// for concurrent use; the Controller serializes access.
type sequence struct {
	steps  []*Step
	cursor int
}

// setSteps replaces the sequence and resets the cursor to 0. An empty list
// is valid; starting on it is rejected by the Controller.
func (q *sequence) setSteps(steps []*Step) {
	q.steps = steps
	q.cursor = 0
}

func (q *sequence) len() int { return len(q.steps) }

func (q *sequence) stepAt(i int) (*Step, bool) {
	if i < 0 || i >= len(q.steps) {
		return nil, false
	}
	return q.steps[i], true
}

func (q *sequence) current() (*Step, bool) {
	return q.stepAt(q.cursor)
}

func (q *sequence) hasNext() bool {
	return q.cursor+1 < len(q.steps)
}

func (q *sequence) hasPrevious() bool {
	return q.cursor-1 >= 0 && len(q.steps) > 0
}

// advance moves the cursor forward, reporting false when there is no next
// step (the cursor is left untouched).
func (q *sequence) advance() bool {
	if !q.hasNext() {
		return false
	}
	q.cursor++
	return true
}

// retreat moves the cursor backward, reporting false at the first step.
func (q *sequence) retreat() bool {
	if !q.hasPrevious() {
		return false
	}
	q.cursor--
	return true
}

// moveTo places the cursor on i, reporting false when i is out of bounds.
func (q *sequence) moveTo(i int) bool {
	if i < 0 || i >= len(q.steps) {
		return false
	}
	q.cursor = i
	return true
}
