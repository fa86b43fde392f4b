package xof

// Batch4 drives four independent XOF instances in lockstep. Per spec.md §5
// this is SIMD-*style* batching for throughput on a real 4-way XOF
// implementation (e.g. AVX2 SHAKE-x4); here it is expressed as an ordinary
// sequential Go loop over four lanes, which is observably equivalent
// (testable property #9: batched and single-lane hashing produce identical
// digests) and keeps the control flow single-threaded per spec.md §5.
type Batch4 struct {
	lanes [4]XOF
}

// NewBatch4 opens four lanes with the same domain-separation prefix.
func NewBatch4(prefix byte) *Batch4 {
	b := &Batch4{}
	for i := range b.lanes {
		b.lanes[i] = New(prefix)
	}
	return b
}

// Update absorbs four independent byte slices, one per lane.
func (b *Batch4) Update(p0, p1, p2, p3 []byte) {
	b.lanes[0].Update(p0)
	b.lanes[1].Update(p1)
	b.lanes[2].Update(p2)
	b.lanes[3].Update(p3)
}

// UpdateAll absorbs the same bytes into all four lanes (e.g. a shared salt).
func (b *Batch4) UpdateAll(p []byte) {
	for _, l := range b.lanes {
		l.Update(p)
	}
}

// UpdateU16LE absorbs u16_le(t) into all four lanes (§4.4: Ch batching
// shares the round index across no lanes — each lane has its own t, so
// callers use Update per-lane for per-round values and UpdateU16LE only
// when the value is genuinely shared, e.g. a common salt-derived counter).
func (b *Batch4) UpdateU16LE(v uint16) {
	for _, l := range b.lanes {
		l.UpdateU16LE(v)
	}
}

// UpdateU16sLELanes absorbs one u16 per lane (e.g. four consecutive party
// indices j, j+1, j+2, j+3 per spec.md §4.1).
func (b *Batch4) UpdateU16sLELanes(v0, v1, v2, v3 uint16) {
	b.lanes[0].UpdateU16LE(v0)
	b.lanes[1].UpdateU16LE(v1)
	b.lanes[2].UpdateU16LE(v2)
	b.lanes[3].UpdateU16LE(v3)
}

// Squeeze reads len(out[i]) bytes into each lane's output buffer.
func (b *Batch4) Squeeze(out [4][]byte) {
	for i, l := range b.lanes {
		l.Squeeze(out[i])
	}
}

// Clear resets all four lanes.
func (b *Batch4) Clear() {
	for _, l := range b.lanes {
		l.Clear()
	}
}
