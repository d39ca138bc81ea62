package byteop_test

import (
	"fmt"
	"testing"

	"github.com/sirkon/seekbuf/internal/byteop"
	"golang.org/x/exp/slices"
)

// Move обязан давать ровно тот же результат что и встроенный
// copy на любой длине, включая обе стороны порога переключения
// стратегий.
func TestMove(t *testing.T) {
	src := make([]byte, 32)
	for i := range src {
		src[i] = byte(i + 1)
	}

	for n := 0; n <= len(src); n++ {
		t.Run(fmt.Sprintf("move %d bytes", n), func(t *testing.T) {
			dst := make([]byte, n)
			moved := byteop.Move(dst, src)
			if moved != n {
				t.Errorf("expected %d bytes moved, got %d", n, moved)
				return
			}

			if !slices.Equal(src[:n], dst) {
				t.Errorf("expected %v, got %v", src[:n], dst)
			}
		})
	}
}

func TestMoveShortSource(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := make([]byte, 16)

	moved := byteop.Move(dst, src)
	if moved != len(src) {
		t.Errorf("expected %d bytes moved, got %d", len(src), moved)
		return
	}

	if !slices.Equal(src, dst[:moved]) {
		t.Errorf("expected %v, got %v", src, dst[:moved])
	}
}
