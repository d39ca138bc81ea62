package seekbuf

import "github.com/sirkon/errors"

var (
	// ErrSourceNotReadable источник не поддерживает чтение.
	ErrSourceNotReadable = errors.Const("source is not readable")

	// ErrSourceNotSeekable источник не поддерживает позиционирование.
	ErrSourceNotSeekable = errors.Const("source is not seekable")

	// ErrNotSupported операция недоступна для читалки.
	ErrNotSupported = errors.Const("operation is not supported by a read-only reader")
)

// IsNotSupported проверка того, что ошибка вызвана обращением
// к неподдерживаемой операции.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
