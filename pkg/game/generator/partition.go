package generator

import (
	"math/rand"

	"dungeonlab/pkg/engine/world"
)

// noNode marks a missing child in the partition arena
const noNode = -1

// leaf is a node of the partition tree. Leaves own exactly one room once
// rooms are created; internal nodes own none.
type leaf struct {
	x, y, width, height int
	child1, child2      int
	room                world.Rect
	hasRoom             bool
}

func (l *leaf) isLeaf() bool {
	return l.child1 == noNode && l.child2 == noNode
}

// partitionCarver decides what a room and a hall look like on the grid
type partitionCarver interface {
	carveRoom(grid *world.Grid, room world.Rect)
	carveHall(grid *world.Grid, from, to world.Rect, rng *rand.Rand)
}

// partitionTree is a binary space partition stored as an arena of nodes.
// Node 0 is the root.
type partitionTree struct {
	nodes []leaf
	cfg   PartitionConfig
}

func newPartitionTree(x, y, width, height int, cfg PartitionConfig) *partitionTree {
	return &partitionTree{
		nodes: []leaf{{x: x, y: y, width: width, height: height, child1: noNode, child2: noNode}},
		cfg:   cfg,
	}
}

// split keeps splitting leaves until a full pass splits nothing.
// Oversized leaves always try to split, others try one time in five per pass.
func (t *partitionTree) split(rng *rand.Rand) {
	for splitSuccessfully := true; splitSuccessfully; {
		splitSuccessfully = false
		// Children appended during the pass are visited in the same pass
		for i := 0; i < len(t.nodes); i++ {
			l := &t.nodes[i]
			if !l.isLeaf() {
				continue
			}
			if l.width > t.cfg.MaxLeafSize || l.height > t.cfg.MaxLeafSize || rng.Float64() > 0.8 {
				if t.splitLeaf(i, rng) {
					splitSuccessfully = true
				}
			}
		}
	}
}

// splitLeaf divides node i in two. It returns false if the node is too small.
func (t *partitionTree) splitLeaf(i int, rng *rand.Rand) bool {
	l := t.nodes[i]
	if !l.isLeaf() {
		return false
	}

	// Split across the long axis when one side is 25% longer than the other
	splitHorizontally := rng.Intn(2) == 0
	if float64(l.width)/float64(l.height) >= 1.25 {
		splitHorizontally = false
	} else if float64(l.height)/float64(l.width) >= 1.25 {
		splitHorizontally = true
	}

	var maxSplit int
	if splitHorizontally {
		maxSplit = l.height - t.cfg.MinLeafSize
	} else {
		maxSplit = l.width - t.cfg.MinLeafSize
	}
	if maxSplit <= t.cfg.MinLeafSize {
		return false
	}
	split := randInt(rng, t.cfg.MinLeafSize, maxSplit)

	var c1, c2 leaf
	if splitHorizontally {
		c1 = leaf{x: l.x, y: l.y, width: l.width, height: split}
		c2 = leaf{x: l.x, y: l.y + split, width: l.width, height: l.height - split}
	} else {
		c1 = leaf{x: l.x, y: l.y, width: split, height: l.height}
		c2 = leaf{x: l.x + split, y: l.y, width: l.width - split, height: l.height}
	}
	c1.child1, c1.child2 = noNode, noNode
	c2.child1, c2.child2 = noNode, noNode

	t.nodes = append(t.nodes, c1, c2)
	t.nodes[i].child1 = len(t.nodes) - 2
	t.nodes[i].child2 = len(t.nodes) - 1
	return true
}

// createRooms places a room in every leaf and a hall at every internal node,
// children first
func (t *partitionTree) createRooms(i int, grid *world.Grid, c partitionCarver, rng *rand.Rand) {
	l := &t.nodes[i]
	if l.isLeaf() {
		w := randInt(rng, t.cfg.RoomMinSize, min(t.cfg.RoomMaxSize, l.width-1))
		h := randInt(rng, t.cfg.RoomMinSize, min(t.cfg.RoomMaxSize, l.height-1))
		x := randInt(rng, l.x, l.x+(l.width-1)-w)
		y := randInt(rng, l.y, l.y+(l.height-1)-h)
		l.room = world.NewRect(x, y, w, h)
		l.hasRoom = true
		c.carveRoom(grid, l.room)
		return
	}

	c1, c2 := l.child1, l.child2
	if c1 != noNode {
		t.createRooms(c1, grid, c, rng)
	}
	if c2 != noNode {
		t.createRooms(c2, grid, c, rng)
	}
	if c1 != noNode && c2 != noNode {
		r1, ok1 := t.representative(c1, rng)
		r2, ok2 := t.representative(c2, rng)
		if ok1 && ok2 {
			c.carveHall(grid, r1, r2, rng)
		}
	}
}

// representative picks one room from the subtree at i. When both children
// have a room the pick is a coin flip, so halls attach to varied rooms.
func (t *partitionTree) representative(i int, rng *rand.Rand) (world.Rect, bool) {
	l := t.nodes[i]
	if l.hasRoom {
		return l.room, true
	}

	var r1, r2 world.Rect
	var ok1, ok2 bool
	if l.child1 != noNode {
		r1, ok1 = t.representative(l.child1, rng)
	}
	if l.child2 != noNode {
		r2, ok2 = t.representative(l.child2, rng)
	}

	switch {
	case ok1 && ok2:
		if rng.Float64() < 0.5 {
			return r1, true
		}
		return r2, true
	case ok1:
		return r1, true
	case ok2:
		return r2, true
	}
	return world.Rect{}, false
}

// leaves returns the indices of all leaf nodes in arena order
func (t *partitionTree) leaves() []int {
	var out []int
	for i := range t.nodes {
		if t.nodes[i].isLeaf() {
			out = append(out, i)
		}
	}
	return out
}

// rooms returns the room of every leaf in arena order
func (t *partitionTree) rooms() []world.Rect {
	var out []world.Rect
	for _, i := range t.leaves() {
		if t.nodes[i].hasRoom {
			out = append(out, t.nodes[i].room)
		}
	}
	return out
}
