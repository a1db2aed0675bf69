package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"

	"github.com/younwookim/rg/internal/ecs"
)

// Checksum digests the live entity set: ids, exact position bits and
// velocities. Two sessions in lockstep produce identical checksums every
// tick; the replay verifier leans on this.
func (s *Session) Checksum() uint64 {
	ids := make([]ecs.EntityID, 0, len(s.World.Position))
	for id := range s.World.Position {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := fnv.New64a()
	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	for _, id := range ids {
		pos := s.World.Position[id]
		write(uint64(id))
		write(math.Float64bits(pos.X))
		write(math.Float64bits(pos.Y))
		write(math.Float64bits(pos.Facing))
		if body, ok := s.World.Body[id]; ok {
			write(math.Float64bits(body.VX))
			write(math.Float64bits(body.VY))
		}
	}
	return h.Sum64()
}
