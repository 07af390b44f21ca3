package pathfind

import "container/heap"

// openEntry is one frontier node.
type openEntry struct {
	node int // grid index
	f, h int
	seq  int
}

// openSet is the A* frontier: a binary heap ordered by f, then h, then
// insertion order, plus a position index for membership and decrease-key.
type openSet struct {
	entries []openEntry
	pos     []int // grid index -> heap position, -1 when absent
	seq     int
}

func newOpenSet(size int) *openSet {
	pos := make([]int, size)
	for i := range pos {
		pos[i] = -1
	}
	return &openSet{pos: pos}
}

func (s *openSet) Len() int { return len(s.entries) }

func (s *openSet) Less(i, j int) bool {
	a, b := s.entries[i], s.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (s *openSet) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
	s.pos[s.entries[i].node] = i
	s.pos[s.entries[j].node] = j
}

func (s *openSet) Push(x any) {
	e := x.(openEntry)
	s.pos[e.node] = len(s.entries)
	s.entries = append(s.entries, e)
}

func (s *openSet) Pop() any {
	last := len(s.entries) - 1
	e := s.entries[last]
	s.entries = s.entries[:last]
	s.pos[e.node] = -1
	return e
}

func (s *openSet) contains(node int) bool {
	return s.pos[node] >= 0
}

// add inserts node, or lowers its cost when it is already queued.
func (s *openSet) add(node, f, h int) {
	if i := s.pos[node]; i >= 0 {
		s.entries[i].f, s.entries[i].h = f, h
		heap.Fix(s, i)
		return
	}
	heap.Push(s, openEntry{node: node, f: f, h: h, seq: s.seq})
	s.seq++
}

// next removes and returns the best frontier node.
func (s *openSet) next() int {
	return heap.Pop(s).(openEntry).node
}
