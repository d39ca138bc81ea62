package seekbuf

import "io"

//go:generate mockgen -package extmocks -destination internal/extmocks/source_mock.go -mock_names Source=SourceMock github.com/sirkon/seekbuf Source

// Source определение источника данных для читалки. Источник
// обязан уметь читать и позиционироваться, о чём сообщает
// через Readable и Seekable. Вызов Read может вернуть меньше
// байт чем было запрошено, пустая вычитка или io.EOF означают
// исчерпание данных.
type Source interface {
	io.Reader
	io.Seeker

	// Readable сообщает способен ли источник читать данные.
	Readable() bool

	// Seekable сообщает способен ли источник позиционироваться.
	Seekable() bool

	// Writable сообщает может ли источник писать данные.
	// Такой источник сбрасывается перед началом чтения.
	Writable() bool

	// Pos текущая позиция чтения в источнике.
	Pos() int64

	// Size полный размер данных источника.
	Size() int64

	// Flush сброс незаписанных данных источника.
	Flush() error
}
