package crane

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a detached copy of the world after Frame ticks.
type Snapshot struct {
	Frame uint64
	World World
}

// Fingerprint hashes everything observable about the world except shape IDs,
// which are random. Two runs fed the same commands produce the same value.
func (s Snapshot) Fingerprint() uint64 {
	w := s.World
	buf := make([]byte, 0, 64+len(w.Shapes)*32)
	buf = binary.LittleEndian.AppendUint64(buf, s.Frame)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(w.CraneX)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(w.HookY)))
	buf = append(buf, byte(w.Filter))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(w.Capacity))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(w.Selected)))
	for _, sh := range w.Shapes {
		buf = append(buf, byte(sh.Kind))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(sh.Pos.X)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(sh.Pos.Y)))
		if sh.Lifted {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(sh.Weight))
	}
	return xxhash.Sum64(buf)
}

// String renders a one-line summary for logs and the CLI.
func (s Snapshot) String() string {
	w := s.World
	lifted := "none"
	if idx, ok := w.LiftedIndex(); ok {
		lifted = fmt.Sprintf("%s#%d", w.Shapes[idx].Kind, idx)
	}
	return fmt.Sprintf("frame=%d shapes=%d hoist=(%d,%d) capacity=%.1f filter=%s lifted=%s",
		s.Frame, len(w.Shapes), w.CraneX, w.HookY, w.Capacity, w.Filter, lifted)
}
