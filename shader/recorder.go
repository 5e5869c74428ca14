package shader

import "sort"

// Value is a recorded uniform value; N says how many of V are meaningful.
type Value struct {
	Int int32
	V   [4]float32
	N   int
}

// Recorder is a shader program that keeps uniform values in memory. It
// stands in for a GPU program in tests and headless tools.
type Recorder struct {
	values map[string]Value
	writes int
	bound  int
}

func NewRecorder() *Recorder {
	return &Recorder{values: make(map[string]Value)}
}

func (r *Recorder) SetInt(name string, v int32) {
	r.set(name, Value{Int: v})
}

func (r *Recorder) SetFloat(name string, v float32) {
	r.set(name, Value{V: [4]float32{v}, N: 1})
}

func (r *Recorder) SetFloat3(name string, x, y, z float32) {
	r.set(name, Value{V: [4]float32{x, y, z}, N: 3})
}

func (r *Recorder) SetFloat4(name string, x, y, z, w float32) {
	r.set(name, Value{V: [4]float32{x, y, z, w}, N: 4})
}

func (r *Recorder) set(name string, v Value) {
	r.values[name] = v
	r.writes++
}

func (r *Recorder) Bind()   { r.bound++ }
func (r *Recorder) Unbind() { r.bound-- }

// Bound reports whether Bind calls outnumber Unbind calls.
func (r *Recorder) Bound() bool {
	return r.bound > 0
}

func (r *Recorder) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Int returns an int uniform, zero if it was never set.
func (r *Recorder) Int(name string) int32 {
	return r.values[name].Int
}

// Writes counts every Set call since the last ResetWrites.
func (r *Recorder) Writes() int {
	return r.writes
}

func (r *Recorder) ResetWrites() {
	r.writes = 0
}

// Names lists every uniform that has been set, sorted.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.values))
	for n := range r.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
