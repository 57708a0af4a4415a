// Package navigation tracks visited screens as an ordered stack so a
// long-lived client view can offer back-navigation independent of any
// platform history mechanism.
package navigation

// Stack is an ordered history of logical screens. The active screen is
// always the top; once a screen has been pushed the stack never becomes
// empty again.
type Stack struct {
	screens []string
}

// NewStack creates a stack pre-populated with the given screens,
// bottom first.
func NewStack(screens ...string) *Stack {
	s := &Stack{}
	for _, screen := range screens {
		s.Push(screen)
	}
	return s
}

// Push appends screen to the history. Pushing the screen that is already
// on top is a no-op, so repeated navigation events do not grow the stack.
func (s *Stack) Push(screen string) {
	if screen == "" {
		return
	}
	if len(s.screens) > 0 && s.screens[len(s.screens)-1] == screen {
		return
	}
	s.screens = append(s.screens, screen)
}

// Back pops the current screen and returns the new active screen. At the
// root it is a no-op: the last entry is never removed.
func (s *Stack) Back() string {
	if len(s.screens) > 1 {
		s.screens = s.screens[:len(s.screens)-1]
	}
	return s.Current()
}

// Current returns the active screen, or "" before any navigation.
func (s *Stack) Current() string {
	if len(s.screens) == 0 {
		return ""
	}
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens in the history.
func (s *Stack) Depth() int {
	return len(s.screens)
}

// Screens returns a copy of the history, bottom first.
func (s *Stack) Screens() []string {
	out := make([]string, len(s.screens))
	copy(out, s.screens)
	return out
}
