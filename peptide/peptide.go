package peptide

import (
	"fmt"
	"hash/fnv"
	"maps"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/unit"
)

// Unit is a single occupied cell: its type and the directions of its children.
type Unit struct {
	Type     unit.Type
	Children lattice.BondSet
}

// Peptide is a tree of units on the lattice, rooted at the origin.
type Peptide struct {
	cells map[lattice.Vec]Unit
}

// New returns an empty peptide.
func New() *Peptide {
	return &Peptide{cells: make(map[lattice.Vec]Unit)}
}

// NewRoot returns a single-cell peptide whose root has type t.
func NewRoot(t unit.Type) *Peptide {
	p := New()
	p.cells[lattice.Origin] = Unit{Type: t}
	return p
}

// FromUnits builds a peptide holding a copy of cells. The result is not
// validated; call Validate before trusting it as a tree.
func FromUnits(cells map[lattice.Vec]Unit) *Peptide {
	return &Peptide{cells: maps.Clone(cells)}
}

// ForTemplate returns the starting assembly for a template shape: a copy of
// its root unit with no children. An empty shape yields an empty peptide.
func ForTemplate(shape *Peptide) *Peptide {
	root, ok := shape.Get(lattice.Origin)
	if !ok {
		return New()
	}
	return NewRoot(root.Type)
}

// Clone returns an independent copy of p.
func (p *Peptide) Clone() *Peptide {
	return &Peptide{cells: maps.Clone(p.cells)}
}

// Len returns the number of occupied cells.
func (p *Peptide) Len() int { return len(p.cells) }

// Get returns the unit at pos.
func (p *Peptide) Get(pos lattice.Vec) (Unit, bool) {
	u, ok := p.cells[pos]
	return u, ok
}

// Has reports whether pos is occupied.
func (p *Peptide) Has(pos lattice.Vec) bool {
	_, ok := p.cells[pos]
	return ok
}

// Root returns the unit at the origin.
func (p *Peptide) Root() (Unit, bool) { return p.Get(lattice.Origin) }

// Positions returns the occupied positions in canonical order.
func (p *Peptide) Positions() []lattice.Vec {
	out := slices.Collect(maps.Keys(p.cells))
	slices.SortFunc(out, lattice.Vec.Compare)
	return out
}

// Each calls fn for every cell in canonical order.
func (p *Peptide) Each(fn func(pos lattice.Vec, u Unit)) {
	for _, pos := range p.Positions() {
		fn(pos, p.cells[pos])
	}
}

// Insert places u at pos. This is the first half of growing the tree; the
// parent's bond must be recorded afterwards with Bond. Insert does not touch
// any other cell.
func (p *Peptide) Insert(pos lattice.Vec, u Unit) error {
	if _, ok := p.cells[pos]; ok {
		return fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	p.cells[pos] = u
	return nil
}

// Bond records the cell at parent.Step(dir) as a child of parent. Both cells
// must be occupied.
func (p *Peptide) Bond(parent lattice.Vec, dir lattice.Direction) error {
	u, ok := p.cells[parent]
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrEmpty, parent)
	}
	if child := parent.Step(dir); !p.Has(child) {
		return fmt.Errorf("%w: child %v", ErrEmpty, child)
	}
	u.Children = u.Children.Set(dir)
	p.cells[parent] = u
	return nil
}

// Attach grows a new leaf of type t next to parent in direction dir and
// returns its position. It performs Insert and Bond as one step.
func (p *Peptide) Attach(parent lattice.Vec, dir lattice.Direction, t unit.Type) (lattice.Vec, error) {
	if !p.Has(parent) {
		return lattice.Vec{}, fmt.Errorf("%w: parent %v", ErrEmpty, parent)
	}
	pos := parent.Step(dir)
	if err := p.Insert(pos, Unit{Type: t}); err != nil {
		return lattice.Vec{}, err
	}
	if err := p.Bond(parent, dir); err != nil {
		delete(p.cells, pos)
		return lattice.Vec{}, err
	}
	return pos, nil
}

// Parent finds the parent of pos by scanning its neighbours. It returns the
// parent position and the direction leading from pos to it.
func (p *Peptide) Parent(pos lattice.Vec) (lattice.Vec, lattice.Direction, bool) {
	for _, d := range lattice.All {
		next := pos.Step(d)
		u, ok := p.cells[next]
		if ok && u.Children.Contains(d.Opposite()) {
			return next, d, true
		}
	}
	return lattice.Vec{}, 0, false
}

// Remove deletes pos and every descendant, and clears the bond that held pos.
// Removing the root strips every subtree but keeps the root cell itself.
// Removing an empty cell is a no-op.
func (p *Peptide) Remove(pos lattice.Vec) {
	u, ok := p.cells[pos]
	if !ok {
		return
	}
	if pos.IsOrigin() {
		for _, d := range u.Children.Dirs() {
			p.Remove(pos.Step(d))
		}
		return
	}
	if parent, d, ok := p.Parent(pos); ok {
		pu := p.cells[parent]
		pu.Children = pu.Children.Unset(d.Opposite())
		p.cells[parent] = pu
	}

	queue := []lattice.Vec{pos}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cu, ok := p.cells[cur]
		if !ok {
			continue
		}
		for _, d := range cu.Children.Dirs() {
			queue = append(queue, cur.Step(d))
		}
		delete(p.cells, cur)
	}
}

// Path returns the types along the tree path from the root down to pos:
// the first entry is the root's child on that path and the last is pos
// itself. The root's own type is never included, so Path of the root is
// empty; so is Path of a cell that is not connected to the root.
//
// The parent at each step is found by neighbour scan (see Parent), breadth
// first, so the search also terminates on malformed input.
func (p *Peptide) Path(pos lattice.Vec) []unit.Type {
	type step struct {
		pos     lattice.Vec
		history []unit.Type
	}
	queue := []step{{pos: pos}}
	seen := map[lattice.Vec]bool{pos: true}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur.pos.IsOrigin() {
			slices.Reverse(cur.history)
			return cur.history
		}
		u, ok := p.cells[cur.pos]
		if !ok {
			continue
		}
		for _, d := range lattice.All {
			next := cur.pos.Step(d)
			n, ok := p.cells[next]
			if !ok || !n.Children.Contains(d.Opposite()) || seen[next] {
				continue
			}
			seen[next] = true
			history := append(slices.Clone(cur.history), u.Type)
			queue = append(queue, step{pos: next, history: history})
		}
	}
	return nil
}

// ChildrenOfType counts the children of pos whose type is t.
func (p *Peptide) ChildrenOfType(pos lattice.Vec, t unit.Type) int {
	u, ok := p.cells[pos]
	if !ok {
		return 0
	}
	count := 0
	for _, d := range u.Children.Dirs() {
		if child, ok := p.cells[pos.Step(d)]; ok && child.Type == t {
			count++
		}
	}
	return count
}

// Bounds returns the minimum and maximum corners of the occupied area.
// Both are the origin for an empty peptide.
func (p *Peptide) Bounds() (minPos, maxPos lattice.Vec) {
	first := true
	for pos := range p.cells {
		if first {
			minPos, maxPos = pos, pos
			first = false
			continue
		}
		minPos.X, minPos.Y = min(minPos.X, pos.X), min(minPos.Y, pos.Y)
		maxPos.X, maxPos.Y = max(maxPos.X, pos.X), max(maxPos.Y, pos.Y)
	}
	return minPos, maxPos
}

// Size returns the width and height of the bounding box, or zero when empty.
func (p *Peptide) Size() lattice.Vec {
	if len(p.cells) == 0 {
		return lattice.Vec{}
	}
	lo, hi := p.Bounds()
	return lattice.V(hi.X-lo.X+1, hi.Y-lo.Y+1)
}

// growthWeights biases MutateGrowth towards Right so generated shapes spread
// horizontally. Indexed by Direction.
var growthWeights = [4]int{lattice.Up: 1, lattice.Down: 1, lattice.Left: 1, lattice.Right: 4}

// MutateGrowth attaches one random leaf: a uniformly chosen cell, a direction
// weighted by growthWeights, and a uniformly chosen type. Draws repeat until
// the target cell is empty. p must not be empty.
func (p *Peptide) MutateGrowth(rng *rand.Rand) lattice.Vec {
	positions := p.Positions()
	total := 0
	for _, w := range growthWeights {
		total += w
	}
	for {
		pos := positions[rng.Intn(len(positions))]

		pick := rng.Intn(total)
		dir := lattice.Up
		for _, d := range lattice.All {
			if pick < growthWeights[d] {
				dir = d
				break
			}
			pick -= growthWeights[d]
		}

		t := unit.All[rng.Intn(len(unit.All))]
		if next, err := p.Attach(pos, dir, t); err == nil {
			return next
		}
	}
}

// Equal reports whether p and q hold the same position→Unit pairs.
func (p *Peptide) Equal(q *Peptide) bool {
	return maps.Equal(p.cells, q.cells)
}

// Key returns a canonical encoding of the cells: equal peptides have equal
// keys, whatever order they were built in.
func (p *Peptide) Key() string {
	var b strings.Builder
	b.Grow(len(p.cells) * 10)
	for _, pos := range p.Positions() {
		u := p.cells[pos]
		b.WriteString(strconv.Itoa(pos.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(pos.Y))
		b.WriteByte(':')
		b.WriteByte(u.Type.Letter())
		b.WriteByte(byte('a' + u.Children))
		b.WriteByte(';')
	}
	return b.String()
}

// Hash returns a 64-bit FNV-1a hash of Key.
func (p *Peptide) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(p.Key()))
	return h.Sum64()
}

// Validate checks the tree invariants listed in the package documentation.
func (p *Peptide) Validate() error {
	if !p.Has(lattice.Origin) {
		return ErrNoRoot
	}
	for _, pos := range p.Positions() {
		u := p.cells[pos]
		for _, d := range u.Children.Dirs() {
			if !p.Has(pos.Step(d)) {
				return fmt.Errorf("%w: %v → %v", ErrDanglingBond, pos, d)
			}
		}
		parents := 0
		for _, d := range lattice.All {
			if n, ok := p.cells[pos.Step(d)]; ok && n.Children.Contains(d.Opposite()) {
				parents++
			}
		}
		switch {
		case pos.IsOrigin() && parents > 0:
			return ErrRootHasParent
		case parents > 1:
			return fmt.Errorf("%w: %v", ErrMultipleParents, pos)
		case !pos.IsOrigin() && parents == 0:
			return fmt.Errorf("%w: %v", ErrOrphan, pos)
		}
	}

	reached := map[lattice.Vec]bool{lattice.Origin: true}
	queue := []lattice.Vec{lattice.Origin}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range p.cells[cur].Children.Dirs() {
			next := cur.Step(d)
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(reached) != len(p.cells) {
		for _, pos := range p.Positions() {
			if !reached[pos] {
				return fmt.Errorf("%w: %v", ErrOrphan, pos)
			}
		}
	}
	return nil
}
