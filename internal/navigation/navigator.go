package navigation

import "sync"

// Navigator is a back stack of screens. Home is always at the bottom.
type Navigator struct {
	mu       sync.Mutex
	stack    []Screen
	onChange func(Screen)
}

// NewNavigator creates a navigator showing Home
func NewNavigator() *Navigator {
	return &Navigator{stack: []Screen{Home{}}}
}

// SetOnChange sets the callback invoked with the new current screen
func (n *Navigator) SetOnChange(callback func(Screen)) {
	n.mu.Lock()
	n.onChange = callback
	n.mu.Unlock()
}

// Current returns the screen on top of the stack
func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Push shows a screen. Pushing Home resets the stack.
func (n *Navigator) Push(s Screen) {
	if s == nil {
		return
	}
	if _, ok := s.(Home); ok {
		n.Reset()
		return
	}
	n.mu.Lock()
	n.stack = append(n.stack, s)
	callback := n.onChange
	n.mu.Unlock()

	if callback != nil {
		callback(s)
	}
}

// Back pops the current screen. It reports false when already at Home.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.stack) == 1 {
		n.mu.Unlock()
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	current := n.stack[len(n.stack)-1]
	callback := n.onChange
	n.mu.Unlock()

	if callback != nil {
		callback(current)
	}
	return true
}

// Reset returns to Home
func (n *Navigator) Reset() {
	n.mu.Lock()
	n.stack = []Screen{Home{}}
	callback := n.onChange
	n.mu.Unlock()

	if callback != nil {
		callback(Home{})
	}
}
