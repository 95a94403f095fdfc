package flood

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Topology decides what happens at the board edges.
type Topology uint8

const (
	// TopologyPlane stops at the edges.
	TopologyPlane Topology = iota
	// TopologyTorus wraps each edge to the opposite one.
	TopologyTorus
)

// String returns the config name of the topology.
func (t Topology) String() string {
	switch t {
	case TopologyPlane:
		return "plane"
	case TopologyTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool {
	return t == TopologyPlane || t == TopologyTorus
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("flood: topology %d: %w", t, ErrInvalidTopology)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	switch string(text) {
	case "plane":
		*t = TopologyPlane
	case "torus":
		*t = TopologyTorus
	default:
		return fmt.Errorf("flood: topology %q: %w", text, ErrInvalidTopology)
	}
	return nil
}

// Adjacency decides which of the surrounding cells count as neighbors.
type Adjacency uint8

const (
	// AdjacencyOrthogonal uses the four edge-sharing cells.
	AdjacencyOrthogonal Adjacency = iota
	// AdjacencyDiagonal adds the four corner-sharing cells.
	AdjacencyDiagonal
)

// String returns the config name of the adjacency.
func (a Adjacency) String() string {
	switch a {
	case AdjacencyOrthogonal:
		return "orthogonal"
	case AdjacencyDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the declared adjacencies.
func (a Adjacency) Valid() bool {
	return a == AdjacencyOrthogonal || a == AdjacencyDiagonal
}

// MarshalText implements encoding.TextMarshaler.
func (a Adjacency) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("flood: adjacency %d: %w", a, ErrInvalidTopology)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Adjacency) UnmarshalText(text []byte) error {
	switch string(text) {
	case "orthogonal":
		*a = AdjacencyOrthogonal
	case "diagonal":
		*a = AdjacencyDiagonal
	default:
		return fmt.Errorf("flood: adjacency %q: %w", text, ErrInvalidTopology)
	}
	return nil
}

// TopologyFromFlags converts the four radio-button flags of a settings dialog
// into the enum pair. Exactly one flag of each pair must be set.
func TopologyFromFlags(plane, torus, orthogonal, diagonal bool) (Topology, Adjacency, error) {
	if plane == torus {
		return 0, 0, fmt.Errorf("flood: plane=%t torus=%t: %w", plane, torus, ErrInvalidTopology)
	}
	if orthogonal == diagonal {
		return 0, 0, fmt.Errorf("flood: orthogonal=%t diagonal=%t: %w", orthogonal, diagonal, ErrInvalidTopology)
	}
	t := TopologyPlane
	if torus {
		t = TopologyTorus
	}
	a := AdjacencyOrthogonal
	if diagonal {
		a = AdjacencyDiagonal
	}
	return t, a, nil
}

func validateTopology(t Topology, a Adjacency) error {
	if !t.Valid() || !a.Valid() {
		return fmt.Errorf("flood: topology %d adjacency %d: %w", t, a, ErrInvalidTopology)
	}
	return nil
}

// Row/column offsets, orthogonal first.
var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the positions adjacent to c on a size x size board.
//
// On a torus both axes wrap independently, so a diagonal step off a corner
// lands on the opposite corner: (0,0) on a 10x10 torus touches (9,9).
// The result never contains c itself and only holds in-range positions.
func Neighbors(c Coord, size int, t Topology, a Adjacency) mapset.Set[Coord] {
	set := mapset.New[Coord]()
	addNeighbors(set, c, size, t, orthogonalOffsets)
	if a == AdjacencyDiagonal {
		addNeighbors(set, c, size, t, diagonalOffsets)
	}
	return set
}

func addNeighbors(set mapset.Set[Coord], c Coord, size int, t Topology, offsets [4][2]int) {
	for _, off := range offsets {
		row, col := c.Row+off[0], c.Col+off[1]
		if t == TopologyTorus {
			row = wrap(row, size)
			col = wrap(col, size)
		} else if row < 0 || row >= size || col < 0 || col >= size {
			continue
		}
		n := At(row, col)
		if n != c {
			set.Put(n)
		}
	}
}

// wrap maps v into [0, size) for offsets of at most one board length.
func wrap(v, size int) int {
	return (v%size + size) % size
}
