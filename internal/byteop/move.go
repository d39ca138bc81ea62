package byteop

// smallMoveLimit длина начиная с которой блочное копирование
// выгоднее поэлементного. Значение снято с эталонной платформы,
// при переносе на другую его стоит перемерить.
const smallMoveLimit = 9

// Move копирует min(len(dst), len(src)) байт из src в dst и
// возвращает количество скопированного. Короткие отрезки
// переносятся поэлементно, минуя вызов copy.
func Move(dst, src []byte) int {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}

	if n < smallMoveLimit {
		for i := 0; i < n; i++ {
			dst[i] = src[i]
		}

		return n
	}

	return copy(dst, src[:n])
}
