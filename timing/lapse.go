package timing

import "time"

// Lapse is one recorded lap: cumulative time and the time since the previous lap
type Lapse struct {
	Time  time.Duration
	Delta time.Duration
}

// Laps is an append-only lap list with a scroll offset counted from the newest lap
type Laps struct {
	items  []Lapse
	offset int
}

// Record appends a lap taken at elapsed and resets the scroll offset
func (l *Laps) Record(elapsed time.Duration) Lapse {
	delta := elapsed
	if n := len(l.items); n > 0 {
		delta = SubSaturating(elapsed, l.items[n-1].Time)
	}

	lap := Lapse{Time: elapsed, Delta: delta}
	l.items = append(l.items, lap)
	l.offset = 0
	return lap
}

// Clear drops every lap
func (l *Laps) Clear() {
	l.items = l.items[:0]
	l.offset = 0
}

// Len returns the number of laps
func (l *Laps) Len() int {
	return len(l.items)
}

// At returns lap i in recording order
func (l *Laps) At(i int) Lapse {
	return l.items[i]
}

// Offset returns the number of newest laps scrolled past
func (l *Laps) Offset() int {
	return l.offset
}

// ScrollDown moves one lap toward the oldest
func (l *Laps) ScrollDown() {
	l.offset = min(l.offset+1, len(l.items))
}

// ScrollUp moves one lap toward the newest
func (l *Laps) ScrollUp() {
	l.offset = max(l.offset-1, 0)
}

// ScrollTop shows the newest laps
func (l *Laps) ScrollTop() {
	l.offset = 0
}

// ScrollBottom shows the oldest laps
func (l *Laps) ScrollBottom() {
	l.offset = len(l.items)
}

// Clamp bounds the offset so that visible rows stay filled
func (l *Laps) Clamp(visible int) {
	l.offset = min(l.offset, max(0, len(l.items)-visible))
}

// Newest calls fn for up to visible laps, newest first, skipping the offset.
// number is the 1-based recording position of the lap.
func (l *Laps) Newest(visible int, fn func(row, number int, lap Lapse)) {
	row := 0
	for i := len(l.items) - 1 - l.offset; i >= 0 && row < visible; i-- {
		fn(row, i+1, l.items[i])
		row++
	}
}
