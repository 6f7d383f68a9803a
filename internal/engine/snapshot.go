package engine

import (
	"encoding/binary"
	"hash/fnv"
)

// Clone returns a deep copy of the state, suitable for replay checkpoints.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Snakes = make([]*Snake, len(s.Snakes))
	for i, sn := range s.Snakes {
		c.Snakes[i] = sn.Clone()
	}
	c.Food = append([]Food(nil), s.Food...)
	c.SetWalls(s.WallList)
	c.Board = BuildBoard(&c)
	return &c
}

// Fingerprint hashes every authoritative field of the state. Two runs are
// bit-identical at a tick exactly when their fingerprints match (modulo
// hash collisions); the derived board is left out.
func (s *GameState) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putBool := func(b bool) {
		if b {
			put(1)
		} else {
			put(0)
		}
	}

	put(int64(s.Width))
	put(int64(s.Height))
	put(int64(s.Level))
	put(int64(s.Tick))
	put(int64(s.TimeRemaining))
	putBool(s.GameOver)
	putBool(s.LevelComplete)
	put(int64(s.WinnerID))

	for _, sn := range s.Snakes {
		put(int64(sn.ID))
		put(int64(sn.Direction))
		putBool(sn.Alive)
		put(int64(sn.Score))
		put(int64(sn.LevelsWon))
		put(int64(sn.TicksWithoutFood))
		put(int64(len(sn.Segments)))
		for _, seg := range sn.Segments {
			put(int64(seg.X))
			put(int64(seg.Y))
		}
		h.Write([]byte(sn.DeathReason))
	}
	for _, f := range s.Food {
		put(int64(f.Kind))
		put(int64(f.Pos.X))
		put(int64(f.Pos.Y))
		put(int64(f.Age))
		put(int64(f.Cooldown))
		put(int64(f.Reproductions))
	}
	for _, w := range s.WallList {
		put(int64(w.X))
		put(int64(w.Y))
	}

	return h.Sum64()
}
