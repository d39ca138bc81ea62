package seekbuf

import (
	"io"
	"os"

	"github.com/sirkon/errors"
)

// FileSource источник данных поверх открытого на чтение файла.
// Позиция отслеживается внутри, поэтому Pos не обращается к
// файлу. Файл источнику не принадлежит и им не закрывается.
type FileSource struct {
	file *os.File
	pos  int64
	size int64
}

// NewFileSource конструктор FileSource. Размер файла снимается
// один раз, его дальнейший рост источником не замечается.
func NewFileSource(file *os.File) (*FileSource, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat source file")
	}

	pos, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errors.Wrap(err, "get current file position")
	}

	return &FileSource{
		file: file,
		pos:  pos,
		size: info.Size(),
	}, nil
}

// Read для реализации io.Reader.
func (s *FileSource) Read(p []byte) (int, error) {
	n, err := s.file.Read(p)
	s.pos += int64(n)

	return n, err
}

// Seek для реализации io.Seeker.
func (s *FileSource) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.file.Seek(offset, whence)
	if err != nil {
		return 0, errors.Wrap(err, "seek source file")
	}

	s.pos = pos
	return pos, nil
}

// Readable для реализации Source.
func (s *FileSource) Readable() bool {
	return true
}

// Seekable для реализации Source.
func (s *FileSource) Seekable() bool {
	return true
}

// Writable для реализации Source.
func (s *FileSource) Writable() bool {
	return false
}

// Pos для реализации Source.
func (s *FileSource) Pos() int64 {
	return s.pos
}

// Size для реализации Source.
func (s *FileSource) Size() int64 {
	return s.size
}

// Flush для реализации Source. Файл открыт для чтения,
// сбрасывать нечего.
func (s *FileSource) Flush() error {
	return nil
}

var _ Source = &FileSource{}
