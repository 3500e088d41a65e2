package chars

import "io"

// ReaderSource is a Source backed by any io.ReadSeeker, e.g. an open file.
// Short reads at end-of-file are silent: they are reported as a shorter
// string rather than an error, matching StringSource's behavior.
type ReaderSource struct {
	r io.ReadSeeker
}

// NewReaderSource returns a Source over r, positioned wherever r's cursor
// currently is.
func NewReaderSource(r io.ReadSeeker) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) Head() Location {
	pos, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}
	return Location(pos)
}

func (s *ReaderSource) SetHead(h Location) {
	s.r.Seek(int64(h), io.SeekStart)
}

func (s *ReaderSource) AtEnd() bool {
	_, ok := s.PeekByte()
	return !ok
}

func (s *ReaderSource) AdvanceHead(n int) {
	target := s.Head() + Location(n)
	if end, err := s.r.Seek(0, io.SeekEnd); err == nil && target > Location(end) {
		target = Location(end)
	}
	if target < 0 {
		target = 0
	}
	s.SetHead(target)
}

func (s *ReaderSource) Peek(n int) string {
	start := s.Head()
	buf := make([]byte, n)
	read, _ := io.ReadFull(s.r, buf)
	s.SetHead(start)
	return string(buf[:read])
}

func (s *ReaderSource) PeekByte() (byte, bool) {
	str := s.Peek(1)
	if len(str) == 0 {
		return 0, false
	}
	return str[0], true
}

func (s *ReaderSource) Read(n int) string {
	str := s.Peek(n)
	s.AdvanceHead(len(str))
	return str
}

func (s *ReaderSource) ReadByte() (byte, bool) {
	b, ok := s.PeekByte()
	if ok {
		s.AdvanceHead(1)
	}
	return b, ok
}
