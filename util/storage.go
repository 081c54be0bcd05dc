package util

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Allocator is the shared backing-store allocator for belt's numeric,
// date-time, time and categorical-index storage (free buffers hold a plain
// Go slice instead). Those buffers go through this allocator so that growing
// buffers (spec §4.2: "amortized
// O(1) resize") get Arrow's pooled Reallocate instead of a fresh make()
// plus copy on every resize.
var Allocator memory.Allocator = memory.NewGoAllocator()

// AllocFloat64 returns a zeroed float64 slice of length n backed by Allocator.
func AllocFloat64(n int) []float64 {
	if n == 0 {
		return nil
	}
	raw := Allocator.Allocate(n * 8)
	return unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n)
}

// ReallocFloat64 resizes cur to length n, truncating or zero-extending, and
// returns the new slice. cur may be nil.
func ReallocFloat64(cur []float64, n int) []float64 {
	if n == 0 {
		if len(cur) > 0 {
			Allocator.Free(bytesOf(cur))
		}
		return nil
	}
	if len(cur) == 0 {
		return AllocFloat64(n)
	}
	raw := Allocator.Reallocate(n*8, bytesOf(cur))
	return unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n)
}

func bytesOf(f []float64) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*8)
}

// AllocInt32 returns a zeroed int32 slice of length n backed by Allocator.
func AllocInt32(n int) []int32 {
	if n == 0 {
		return nil
	}
	raw := Allocator.Allocate(n * 4)
	return unsafe.Slice((*int32)(unsafe.Pointer(&raw[0])), n)
}

// ReallocInt32 resizes cur to length n, truncating or zero-extending.
func ReallocInt32(cur []int32, n int) []int32 {
	if n == 0 {
		if len(cur) > 0 {
			Allocator.Free(int32Bytes(cur))
		}
		return nil
	}
	if len(cur) == 0 {
		return AllocInt32(n)
	}
	raw := Allocator.Reallocate(n*4, int32Bytes(cur))
	return unsafe.Slice((*int32)(unsafe.Pointer(&raw[0])), n)
}

func int32Bytes(v []int32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

// AllocUint16 returns a zeroed uint16 slice of length n backed by Allocator.
func AllocUint16(n int) []uint16 {
	if n == 0 {
		return nil
	}
	raw := Allocator.Allocate(n * 2)
	return unsafe.Slice((*uint16)(unsafe.Pointer(&raw[0])), n)
}

// AllocBytes returns a zeroed byte slice of length n backed by Allocator. Used
// for the sub-byte packed formats (U2/U4) and for UInt8 index storage.
func AllocBytes(n int) []byte {
	if n == 0 {
		return nil
	}
	return Allocator.Allocate(n)
}
