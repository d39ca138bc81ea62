package seekbuf

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/sirkon/seekbuf/internal/bufpool"
	"github.com/sirkon/seekbuf/internal/byteop"
)

// Reader буферизованная читалка поверх позиционируемого источника.
// Предназначена для случаев когда данные вычитываются большим
// количеством мелких чтений: между пользователем и источником
// ставится буфер фиксированного размера, при этом семантика
// чтения и позиционирования байт в байт совпадает с работой
// с источником напрямую.
//
// Экземпляр рассчитан на строго последовательное использование
// одним владельцем, внутренних блокировок нет.
type Reader struct {
	src Source

	size int64 // Полный размер источника, снимается один раз при создании.
	fpos int64 // Логическая позиция чтения.

	buf   []byte // Окно источника; len — заполненная часть, cap — вместимость.
	bpos  int    // Позиция вычитки в буфере.
	valid bool   // Буфер соответствует окну источника [fpos-bpos, fpos-bpos+cap).

	closed bool
}

// New конструктор Reader поверх данного источника. Источник
// обязан поддерживать и чтение, и позиционирование. Пишущий
// источник сбрасывается до начала работы, чтобы не читать
// мимо его незаписанного буфера.
//
// Источник читалке не принадлежит и ей не закрывается.
func New(src Source, opts ...ReaderOpt) (*Reader, error) {
	if !src.Readable() {
		return nil, ErrSourceNotReadable
	}
	if !src.Seekable() {
		return nil, ErrSourceNotSeekable
	}

	if src.Writable() {
		if err := src.Flush(); err != nil {
			return nil, errors.Wrap(err, "flush writable source")
		}
	}

	r := &Reader{
		src:  src,
		size: src.Size(),
		fpos: src.Pos(),
	}
	for _, opt := range opts {
		opt(r, readerOptRestriction{})
	}
	if r.buf == nil {
		r.buf = bufpool.Get(bufpool.SlabSize)
	}

	return r, nil
}

// Size полный размер данных источника зафиксированный при
// создании читалки. Последующий рост источника не замечается.
func (r *Reader) Size() int64 {
	return r.size
}

// ReadByte для реализации io.ByteReader. По исчерпании данных
// возвращается io.EOF.
func (r *Reader) ReadByte() (byte, error) {
	if r.fpos >= r.size {
		return 0, io.EOF
	}

	if !r.valid || r.bpos >= cap(r.buf) {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	c := r.buf[r.bpos]
	r.bpos++
	r.fpos++

	return c, nil
}

// Read для реализации io.Reader. Запрос длиннее вместимости
// буфера уходит в источник напрямую, минуя буферизацию.
// По исчерпании данных возвращается (0, io.EOF).
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(p) > cap(r.buf) {
		return r.readDirect(p)
	}

	rest := r.size - r.fpos
	if rest <= 0 {
		return 0, io.EOF
	}

	if !r.valid || len(p)+r.bpos > cap(r.buf) {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := len(p)
	if int64(n) > rest {
		n = int(rest)
	}

	n = byteop.Move(p[:n], r.buf[r.bpos:])
	r.bpos += n
	r.fpos += int64(n)

	return n, nil
}

// Прямое чтение в пользовательский буфер мимо внутреннего окна.
// Содержимое окна не трогается: если новая позиция остаётся
// внутри него, то окно продолжает жить, иначе оно сбрасывается.
func (r *Reader) readDirect(p []byte) (int, error) {
	if r.src.Pos() != r.fpos {
		if _, err := r.src.Seek(r.fpos, io.SeekStart); err != nil {
			return 0, errors.Wrap(err, "seek source to the read position").
				Int64("desired-position", r.fpos)
		}
	}

	var n int
	for n < len(p) {
		read, err := r.src.Read(p[n:])
		if err != nil {
			if err == io.EOF {
				break
			}

			return n, errors.Wrap(err, "read source directly")
		}

		if read == 0 {
			break
		}

		n += read
	}

	r.fpos += int64(n)
	if r.valid && r.bpos+n < cap(r.buf) {
		r.bpos += n
	} else {
		r.invalidate()
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Заполнение окна данными источника начиная с логической позиции.
// Вычитка не длиннее известного остатка данных, иначе источник
// пришлось бы дёргать лишний раз ради пустого чтения. Источник
// не обязан отдавать всё запрошенное за один вызов, поэтому
// вычитка продолжается до заполнения окна либо до пустого чтения.
func (r *Reader) fill() error {
	r.invalidate()

	if r.src.Pos() != r.fpos {
		if _, err := r.src.Seek(r.fpos, io.SeekStart); err != nil {
			return errors.Wrap(err, "seek source to the read position").
				Int64("desired-position", r.fpos)
		}
	}

	lim := cap(r.buf)
	if rest := r.size - r.fpos; rest < int64(lim) {
		lim = int(rest)
	}

	buf := r.buf[:lim]
	var n int
	for n < len(buf) {
		read, err := r.src.Read(buf[n:])
		if err != nil {
			if err == io.EOF {
				break
			}

			return errors.Wrap(err, "fill read buffer")
		}

		if read == 0 {
			break
		}

		n += read
	}

	r.buf = buf[:n]
	r.bpos = 0
	r.valid = true

	return nil
}

func (r *Reader) invalidate() {
	r.buf = r.buf[:0]
	r.bpos = 0
	r.valid = false
}

var (
	_ io.ReadSeekCloser = &Reader{}
	_ io.ByteReader     = &Reader{}
)
