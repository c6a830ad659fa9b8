package engine

import (
	"strings"
	"sync/atomic"
)

// Command is one of the five discrete wizard inputs.
type Command uint8

const (
	Increase Command = iota
	Decrease
	CycleNext
	CyclePrev
	Confirm

	commandCount
)

var commandNames = [commandCount]string{"increase", "decrease", "cycle-next", "cycle-prev", "confirm"}

func (c Command) String() string {
	if c < commandCount {
		return commandNames[c]
	}
	return "unknown"
}

// Commands is the set of commands collected for one tick.
type Commands [commandCount]bool

// NewCommands builds a set from the given commands. Duplicates collapse.
func NewCommands(cmds ...Command) Commands {
	var set Commands
	for _, c := range cmds {
		if c < commandCount {
			set[c] = true
		}
	}
	return set
}

// Has reports whether c is in the set.
func (c Commands) Has(cmd Command) bool {
	return cmd < commandCount && c[cmd]
}

// Empty reports whether no command is set.
func (c Commands) Empty() bool {
	return c == Commands{}
}

func (c Commands) String() string {
	var names []string
	for i, set := range c {
		if set {
			names = append(names, Command(i).String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Queue coalesces commands between ticks. It holds at most one pending instance of each command:
// pushing the same command twice before a drain has the same effect as pushing it once.
//
// Push is safe to call from any goroutine; Drain belongs to the goroutine that owns the Machine.
// The zero value is ready to use.
type Queue struct {
	pending [commandCount]atomic.Bool
}

// Push marks cmd as pending.
func (q *Queue) Push(cmd Command) {
	if cmd < commandCount {
		q.pending[cmd].Store(true)
	}
}

// Drain returns the pending set and clears it.
func (q *Queue) Drain() Commands {
	var set Commands
	for i := range q.pending {
		set[i] = q.pending[i].Swap(false)
	}
	return set
}

// Pending reports whether any command waits for the next drain.
func (q *Queue) Pending() bool {
	for i := range q.pending {
		if q.pending[i].Load() {
			return true
		}
	}
	return false
}
