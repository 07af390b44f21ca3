package gamemap

// TileKind identifies what a grid node was built from.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
)

// Node is one present cell of a Grid. Nodes are created once per level and
// never mutated afterwards; search state lives with the search.
type Node struct {
	Cell     Cell
	Kind     TileKind
	Walkable bool
	// Index is the node's slot in the grid's backing array.
	Index int
}

// MakeFloor returns a walkable floor node at c.
func MakeFloor(c Cell) Node {
	return Node{Cell: c, Kind: TileFloor, Walkable: true}
}

// MakeWall returns a blocking wall node at c.
func MakeWall(c Cell) Node {
	return Node{Cell: c, Kind: TileWall, Walkable: false}
}
