package shader

import (
	"encoding/binary"
	"math"
)

// Layout of the light uniform block (std140 / WGSL uniform rules):
//
//	struct Light {
//	  position      vec3  // 0
//	  color         vec4  // 16
//	  coneDirection vec3  // 32
//	  coneFalloff   float // 44
//	  intensity     float // 48
//	}                     // 64 bytes
//
//	struct LightBlock {
//	  lightCount int      // 0
//	  lights     Light[N] // 16
//	}
const (
	blockHeaderSize = 16
	LightStride     = 64
)

var (
	fieldOffsets = [numLightFields]int{0, 16, 32, 44, 48}
	fieldWidths  = [numLightFields]int{3, 4, 3, 1, 1}
)

// BlockSize is the byte size of a block holding capacity lights.
func BlockSize(capacity int) int {
	return blockHeaderSize + LightStride*capacity
}

// Block is a CPU-side copy of the light uniform block. Set calls write into
// it by uniform name and widen a dirty range, so a flush only sends what
// changed. Names outside the block are ignored, as a GL program ignores
// uniforms it does not declare.
type Block struct {
	data     []byte
	capacity int
	dirtyLo  int
	dirtyHi  int
}

func NewBlock(capacity int) *Block {
	if capacity < 0 {
		capacity = 0
	}
	b := &Block{
		data:     make([]byte, BlockSize(capacity)),
		capacity: capacity,
	}
	b.MarkClean()
	return b
}

func (b *Block) Capacity() int { return b.capacity }
func (b *Block) Size() int     { return len(b.data) }
func (b *Block) Bytes() []byte { return b.data }

// Dirty returns the byte range written since the last MarkClean.
func (b *Block) Dirty() (lo, hi int, ok bool) {
	if b.dirtyHi <= b.dirtyLo {
		return 0, 0, false
	}
	return b.dirtyLo, b.dirtyHi, true
}

func (b *Block) MarkClean() {
	b.dirtyLo = len(b.data)
	b.dirtyHi = 0
}

func (b *Block) SetInt(name string, v int32) {
	if name != LightCount {
		return
	}
	binary.LittleEndian.PutUint32(b.data[0:], uint32(v))
	b.touch(0, 4)
}

// Count reads back lightCount.
func (b *Block) Count() int32 {
	return int32(binary.LittleEndian.Uint32(b.data[0:]))
}

func (b *Block) SetFloat(name string, v float32) {
	b.setFloats(name, v)
}

func (b *Block) SetFloat3(name string, x, y, z float32) {
	b.setFloats(name, x, y, z)
}

func (b *Block) SetFloat4(name string, x, y, z, w float32) {
	b.setFloats(name, x, y, z, w)
}

// Floats reads back a light field.
func (b *Block) Floats(i int, f LightField) []float32 {
	off, ok := b.offset(i, f)
	if !ok {
		return nil
	}
	out := make([]float32, fieldWidths[f])
	for c := range out {
		out[c] = math.Float32frombits(binary.LittleEndian.Uint32(b.data[off+4*c:]))
	}
	return out
}

func (b *Block) setFloats(name string, vals ...float32) {
	i, f, ok := ParseLightUniform(name)
	if !ok {
		return
	}
	off, ok := b.offset(i, f)
	if !ok {
		return
	}
	n := min(len(vals), fieldWidths[f])
	for c := 0; c < n; c++ {
		binary.LittleEndian.PutUint32(b.data[off+4*c:], math.Float32bits(vals[c]))
	}
	b.touch(off, off+4*n)
}

func (b *Block) offset(i int, f LightField) (int, bool) {
	if i < 0 || i >= b.capacity || f < 0 || f >= numLightFields {
		return 0, false
	}
	return blockHeaderSize + i*LightStride + fieldOffsets[f], true
}

func (b *Block) touch(lo, hi int) {
	if lo < b.dirtyLo {
		b.dirtyLo = lo
	}
	if hi > b.dirtyHi {
		b.dirtyHi = hi
	}
}
