// core/barcode/barcode.go
package barcode

// SeparatorDim marks a separator entry in the bar-aligned fields. Separators
// never correspond to a topological feature; they delimit the provenance
// groups produced by Concat and must survive every algebraic operation.
const SeparatorDim = -1

// Simplex is one weighted simplex of a generating chain. Verts are vertex
// indices of the point cloud the bar was computed over; Weight is the
// filtration value at which the simplex appears.
type Simplex struct {
	Verts  []int
	Weight float64
}

// Chain is a formal sum of simplices.
type Chain []Simplex

// Edge is one weighted edge of a generating cycle.
type Edge struct {
	U, V   int
	Weight float64
}

// Cycle is the generating cycle of a bar at death, as a list of edges.
type Cycle []Edge

// Span records one segregating-site interval that contributed evidence.
type Span struct {
	Start, End int
}

// Barcode is the persistence summary of one or more intervals: seven
// parallel sequences. The first six are bar-aligned (one entry per bar or
// separator); Spans is group-aligned. Splitting the bar fields on separator
// entries yields exactly len(Spans) groups, and the bars of group g carry
// the evidence recorded by Spans[g].
//
// A Barcode with no spans is empty: no window ever covered it. A Barcode may
// also hold a span but no bars, meaning a window was computed and found no
// features; that still counts as coverage for dominance purposes.
type Barcode struct {
	Dims        []int
	Births      []float64
	Lengths     []float64
	BirthChains []Chain
	DeathCycles []Cycle
	DeathChains []Chain
	Spans       []Span
}

// Empty reports whether no interval contributed to this barcode.
func (b Barcode) Empty() bool { return len(b.Spans) == 0 }

// Bars returns the number of entries in the bar-aligned fields, separators
// included.
func (b Barcode) Bars() int { return len(b.Dims) }

// B1 counts dimension-1 bars with positive persistence, the strength metric
// everything downstream ranks by.
func (b Barcode) B1() int {
	n := 0
	for k, d := range b.Dims {
		if d == 1 && b.Lengths[k] > 0 {
			n++
		}
	}
	return n
}

// Coverage sums (End - Start) over all recorded spans.
func (b Barcode) Coverage() int {
	c := 0
	for _, s := range b.Spans {
		c += s.End - s.Start
	}
	return c
}

// WithSpan returns a copy of b tagged with the single span [i, j]. Used to
// stamp raw engine output with the window interval it explains.
func (b Barcode) WithSpan(i, j int) Barcode {
	out := b.Clone()
	out.Spans = []Span{{Start: i, End: j}}
	return out
}

// Clone deep-copies the slice headers; chains and cycles are never mutated
// after construction, so their backing arrays are shared.
func (b Barcode) Clone() Barcode {
	return Barcode{
		Dims:        append([]int(nil), b.Dims...),
		Births:      append([]float64(nil), b.Births...),
		Lengths:     append([]float64(nil), b.Lengths...),
		BirthChains: append([]Chain(nil), b.BirthChains...),
		DeathCycles: append([]Cycle(nil), b.DeathCycles...),
		DeathChains: append([]Chain(nil), b.DeathChains...),
		Spans:       append([]Span(nil), b.Spans...),
	}
}

// Groups splits the bar-aligned fields on separator entries. Each group is
// returned as a Barcode holding that group's bars and its single span.
// len(result) == len(b.Spans) for any well-formed barcode.
func (b Barcode) Groups() []Barcode {
	if b.Empty() {
		return nil
	}
	groups := make([]Barcode, 0, len(b.Spans))
	start := 0
	cut := func(end, g int) {
		groups = append(groups, Barcode{
			Dims:        b.Dims[start:end],
			Births:      b.Births[start:end],
			Lengths:     b.Lengths[start:end],
			BirthChains: b.BirthChains[start:end],
			DeathCycles: b.DeathCycles[start:end],
			DeathChains: b.DeathChains[start:end],
			Spans:       b.Spans[g : g+1],
		})
	}
	g := 0
	for k, d := range b.Dims {
		if d == SeparatorDim {
			cut(k, g)
			start = k + 1
			g++
		}
	}
	cut(len(b.Dims), g)
	return groups
}
