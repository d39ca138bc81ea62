package seekbuf

import (
	"io"

	"github.com/sirkon/errors"
)

// BytesSource источник данных поверх слайса байтов. В основном
// полезен в тестах и при работе с небольшими данными уже
// находящимися в памяти.
type BytesSource struct {
	data []byte
	pos  int64
}

// NewBytesSource конструктор BytesSource.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{
		data: data,
	}
}

// Read для реализации io.Reader.
func (s *BytesSource) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)

	return n, nil
}

// Seek для реализации io.Seeker. Позиция за концом данных
// допустима, чтение оттуда просто вернёт io.EOF.
func (s *BytesSource) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += s.pos
	case io.SeekEnd:
		offset += int64(len(s.data))
	default:
		return 0, errors.Newf("unsupported whence value %d", whence)
	}

	if offset < 0 {
		return 0, errors.New("position cannot be negative").
			Int64("invalid-position", offset)
	}

	s.pos = offset
	return offset, nil
}

// Readable для реализации Source.
func (s *BytesSource) Readable() bool {
	return true
}

// Seekable для реализации Source.
func (s *BytesSource) Seekable() bool {
	return true
}

// Writable для реализации Source.
func (s *BytesSource) Writable() bool {
	return false
}

// Pos для реализации Source.
func (s *BytesSource) Pos() int64 {
	return s.pos
}

// Size для реализации Source.
func (s *BytesSource) Size() int64 {
	return int64(len(s.data))
}

// Flush для реализации Source. Сбрасывать нечего.
func (s *BytesSource) Flush() error {
	return nil
}

var _ Source = &BytesSource{}
