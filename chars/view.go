package chars

// View is a scoped, speculative cursor over a Source: the tentative-view
// abstraction every backtracking read in this module is built on. It
// captures the Source's head on construction and, on Close, unconditionally
// seeks the Source back to that head — regardless of what operations ran
// in between, and regardless of whether the caller's computation succeeded.
//
// Callers who want to commit a successful speculative parse must explicitly
// AdvanceHead the underlying Source themselves; closing a View never commits
// anything.
type View struct {
	src    Source
	start  Location
	parsed int
	closed bool
}

// NewView opens a tentative view over src.
func NewView(src Source) *View {
	return &View{src: src, start: src.Head()}
}

// Close restores src's head to the value observed at construction. It is
// idempotent; callers should defer it immediately after NewView.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.src.SetHead(v.start)
}

func (v *View) AtEnd() bool { return v.src.AtEnd() }

func (v *View) Head() Location { return v.src.Head() }

// SetHead seeks the underlying source directly; it does not affect
// CharsParsed, which only counts Read/ReadByte/AdvanceHead calls.
func (v *View) SetHead(h Location) { v.src.SetHead(h) }

func (v *View) Peek(n int) string { return v.src.Peek(n) }

func (v *View) PeekByte() (byte, bool) { return v.src.PeekByte() }

func (v *View) Read(n int) string {
	s := v.src.Read(n)
	v.parsed += len(s)
	return s
}

func (v *View) ReadByte() (byte, bool) {
	b, ok := v.src.ReadByte()
	if ok {
		v.parsed++
	}
	return b, ok
}

// AdvanceHead advances the underlying source by n and counts it towards
// CharsParsed.
func (v *View) AdvanceHead(n int) {
	v.src.AdvanceHead(n)
	v.parsed += n
}

// CharsParsed returns the number of bytes advanced through this view since
// it was opened. It describes what would have been consumed were the view's
// progress committed; the source itself is restored on Close regardless.
func (v *View) CharsParsed() int { return v.parsed }

// NextIsString reports whether s appears at the cursor without consuming it.
func (v *View) NextIsString(s string) bool {
	if v.AtEnd() {
		return false
	}
	return v.Peek(len(s)) == s
}

// NextIsByte reports whether c appears at the cursor without consuming it.
func (v *View) NextIsByte(c byte) bool {
	b, ok := v.PeekByte()
	return ok && b == c
}

// Expect advances past s if present, returning the number of bytes
// consumed; otherwise it leaves the cursor unchanged and returns
// ErrFailedExpectation.
func (v *View) Expect(s string) (int, error) {
	if !v.NextIsString(s) {
		return 0, ErrFailedExpectation
	}
	n := len(s)
	v.AdvanceHead(n)
	return n, nil
}

// ExpectByte advances past c if present; otherwise it leaves the cursor
// unchanged and returns ErrFailedExpectation.
func (v *View) ExpectByte(c byte) (int, error) {
	if !v.NextIsByte(c) {
		return 0, ErrFailedExpectation
	}
	v.AdvanceHead(1)
	return 1, nil
}

// SubParse runs f against a fresh, independently-scoped tentative view
// starting at v's current position, and returns whatever f returns. f's
// view is always closed (restored) before SubParse returns — f can never
// commit progress on v's behalf; a caller that wants to keep f's progress
// must AdvanceHead(v, ...) by the amount f reports consuming.
func SubParse[T any](v *View, f func(*View) T) T {
	sub := NewView(v.src)
	defer sub.Close()
	return f(sub)
}
