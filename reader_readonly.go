package seekbuf

import (
	"github.com/sirkon/errors"
	"github.com/sirkon/seekbuf/internal/bufpool"
)

// Write читалка не пишет, всегда возвращается ErrNotSupported
// и состояние не меняется.
func (r *Reader) Write(p []byte) (int, error) {
	return 0, ErrNotSupported
}

// Truncate изменение размера не поддерживается.
func (r *Reader) Truncate(size int64) error {
	return ErrNotSupported
}

// Close освобождение ресурсов читалки. Источник не закрывается,
// но его позиция выравнивается с логической. Повторные вызовы
// ничего не делают.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	err := r.Flush()
	bufpool.Put(r.buf)
	r.buf = nil

	if err != nil {
		return errors.Wrap(err, "synchronize source position")
	}

	return nil
}
