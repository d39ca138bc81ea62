package seekbuf

import (
	"io"

	"github.com/sirkon/errors"
)

// Pos текущая логическая позиция чтения.
func (r *Reader) Pos() int64 {
	return r.fpos
}

// Seek для реализации io.Seeker. Позиция внутри текущего окна
// достигается простым сдвигом курсора, без обращений к источнику.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += r.fpos
	case io.SeekEnd:
		offset += r.size
	default:
		return 0, errors.Newf("unsupported whence value %d", whence)
	}

	if err := r.setPos(offset); err != nil {
		return 0, err
	}

	return r.fpos, nil
}

// Установка логической позиции. Если новая позиция попадает в
// текущее окно, то сдвигаются только курсор и сама позиция.
// Иначе позиционируется источник, его отказ уходит пользователю
// как есть, а окно сбрасывается.
func (r *Reader) setPos(pos int64) error {
	if r.valid {
		d := pos - r.fpos + int64(r.bpos)
		if d >= 0 && d < int64(cap(r.buf)) {
			r.bpos = int(d)
			r.fpos = pos

			return nil
		}
	}

	if _, err := r.src.Seek(pos, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek source").Int64("desired-position", pos)
	}

	r.fpos = pos
	r.invalidate()

	return nil
}

// Flush синхронизация позиции источника с логической позицией
// чтения. После вызова с источником можно работать напрямую.
// Окно сбрасывается, следующее чтение заполнит буфер заново.
func (r *Reader) Flush() error {
	if r.src.Pos() != r.fpos {
		pos, err := r.src.Seek(r.fpos, io.SeekStart)
		if err != nil {
			return errors.Wrap(err, "seek source to the logical position").
				Int64("desired-position", r.fpos)
		}

		r.fpos = pos
	}

	r.invalidate()

	return nil
}
