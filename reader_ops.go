package seekbuf

import "github.com/sirkon/seekbuf/internal/bufpool"

// ReaderOpt определение опции читалки.
type ReaderOpt func(r *Reader, _ readerOptRestriction)

type readerOptRestriction struct{}

// WithBufferSize устанавливает вместимость буфера чтения.
// По-умолчанию она равна bufpool.SlabSize. Значения меньше
// единицы игнорируются.
func WithBufferSize(size int) ReaderOpt {
	return func(r *Reader, _ readerOptRestriction) {
		if size > 0 {
			r.buf = bufpool.Get(size)
		}
	}
}
