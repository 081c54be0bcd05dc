package buffer

import (
	"fmt"
	"math"
	"strings"
)

// formatBuffer implements the shared "<Flavor> Buffer (<n>)\n(v1, v2, ...)"
// contract (spec §4.2, §6): at most 32 elements are printed in full; beyond
// that, the first 30 plus the last, joined by ", ..., " (ColumnBufferTests.
// testToStringBigger pins the cutoff at 30, not §6's imprecise "first 31").
func formatBuffer(flavor string, n int, elem func(i int) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Buffer (%d)\n(", flavor, n)
	if n <= 32 {
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(elem(i))
		}
	} else {
		for i := 0; i < 30; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(elem(i))
		}
		b.WriteString(", ..., ")
		b.WriteString(elem(n - 1))
	}
	b.WriteString(")")
	return b.String()
}

func formatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "?"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

func formatInteger(v float64) string {
	switch {
	case math.IsNaN(v):
		return "?"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return fmt.Sprintf("%d", int64(v))
	}
}

func (b *RealBuffer) String() string {
	return formatBuffer("Real", len(b.data), func(i int) string { return formatReal(b.data[i]) })
}

func (b *IntegerBuffer) String() string {
	return formatBuffer("Integer", len(b.data), func(i int) string { return formatInteger(b.data[i]) })
}

func (b *GrowingRealBuffer) String() string {
	return formatBuffer("Real", len(b.data), func(i int) string { return formatReal(b.data[i]) })
}

func (b *GrowingIntegerBuffer) String() string {
	return formatBuffer("Integer", len(b.data), func(i int) string { return formatInteger(b.data[i]) })
}

func (b *CategoricalBuffer[T]) String() string {
	return formatBuffer("Categorical", b.store.size(), func(i int) string {
		idx := b.store.get(i)
		if idx == 0 {
			return "?"
		}
		b.dictMu.Lock()
		v := b.valueLookup[idx]
		b.dictMu.Unlock()
		return fmt.Sprint(v)
	})
}

func (b *FreeBuffer[T]) String() string {
	return formatBuffer("Free", len(b.data), func(i int) string {
		var v interface{} = b.data[i]
		if v == nil {
			return "?"
		}
		return fmt.Sprint(v)
	})
}
