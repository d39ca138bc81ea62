package bufpool

import "sync"

// SlabSize вместимость буферов хранящихся в пуле.
const SlabSize = 8192

var pool = sync.Pool{
	New: func() any {
		return make([]byte, 0, SlabSize)
	},
}

// Get выдаёт буфер нулевой длины с вместимостью size. Буферы
// стандартной вместимости берутся из общего пула, буферы других
// размеров создаются заново.
func Get(size int) []byte {
	if size == SlabSize {
		return pool.Get().([]byte)[:0]
	}

	return make([]byte, 0, size)
}

// Put возвращает буфер в пул. Буферы нестандартной вместимости
// просто выбрасываются.
func Put(buf []byte) {
	if cap(buf) != SlabSize {
		return
	}

	pool.Put(buf[:0])
}
