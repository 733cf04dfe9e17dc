package core

// Cue is an opaque feedback event for the host (sound or visual effect).
type Cue string

const (
	CueStep    Cue = "step"    // A roll completed
	CueInvalid Cue = "invalid" // A roll was rejected, or the die fell
	CueBlip    Cue = "blip"    // A timed tile toggled
	CueWin     Cue = "win"     // The goal was reached
	CueReset   Cue = "reset"   // The level was manually reset
	CueType    Cue = "type"    // A typewriter text revealed a character
)

// Sink receives cues as they happen.
type Sink interface {
	Emit(c Cue)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(c Cue)

// Emit calls f(c).
func (f SinkFunc) Emit(c Cue) {
	f(c)
}

// Discard is a Sink that drops every cue.
var Discard Sink = SinkFunc(func(Cue) {})

// CueLog records cues in emission order.
type CueLog struct {
	cues []Cue
}

// Emit appends the cue to the log.
func (l *CueLog) Emit(c Cue) {
	l.cues = append(l.cues, c)
}

// Cues returns the recorded cues.
func (l *CueLog) Cues() []Cue {
	return l.cues
}

// Count returns how many times c was emitted.
func (l *CueLog) Count(c Cue) int {
	n := 0
	for _, got := range l.cues {
		if got == c {
			n++
		}
	}
	return n
}

// Drain returns the recorded cues and clears the log.
func (l *CueLog) Drain() []Cue {
	out := l.cues
	l.cues = nil
	return out
}
