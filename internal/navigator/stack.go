package navigator

// BackResult tells what Back did.
type BackResult int

const (
	BackClearedFilter BackResult = iota // the top view's filter was removed
	BackPopped                          // the top view was discarded
	BackAtRoot                          // nothing to do on the bottom view
)

// Stack is the ordered sequence of views, top = current. It is never empty
// and its bottom view is never popped.
type Stack struct {
	views []View
}

// NewStack creates a stack holding root. It panics on a nil root.
func NewStack(root View) *Stack {
	if root == nil {
		panic("navigator: nil root view")
	}
	return &Stack{views: []View{root}}
}

// Top returns the current view.
func (s *Stack) Top() View {
	return s.views[len(s.views)-1]
}

// Depth returns the number of views on the stack.
func (s *Stack) Depth() int {
	return len(s.views)
}

// Push makes v the current view, with its filter reset.
func (s *Stack) Push(v View) {
	v.List().ClearFilter()
	s.views = append(s.views, v)
}

// Pop discards the top view. It refuses to remove the bottom view and
// reports whether a view was popped.
func (s *Stack) Pop() bool {
	if len(s.views) <= 1 {
		return false
	}
	s.views[len(s.views)-1] = nil
	s.views = s.views[:len(s.views)-1]
	return true
}

// Back clears the top view's filter if one is active, and pops the view
// otherwise.
func (s *Stack) Back() BackResult {
	l := s.Top().List()
	if _, ok := l.Filter(); ok {
		l.ClearFilter()
		return BackClearedFilter
	}
	if s.Pop() {
		return BackPopped
	}
	return BackAtRoot
}

// Resize applies a new list viewport to every view.
func (s *Stack) Resize(height, width int) {
	for _, v := range s.views {
		v.List().SetSize(height, width)
	}
}
