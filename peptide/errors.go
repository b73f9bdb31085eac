package peptide

import "errors"

var (
	// ErrOccupied indicates an insertion into a cell that already holds a unit.
	ErrOccupied = errors.New("peptide: cell is occupied")
	// ErrEmpty indicates an operation that requires a unit at an empty cell.
	ErrEmpty = errors.New("peptide: cell is empty")

	// ErrNoRoot indicates there is no unit at the origin.
	ErrNoRoot = errors.New("peptide: no root at origin")
	// ErrRootHasParent indicates a neighbour of the root claims it as a child.
	ErrRootHasParent = errors.New("peptide: root has a parent")
	// ErrDanglingBond indicates a bond pointing at an empty cell.
	ErrDanglingBond = errors.New("peptide: bond to empty cell")
	// ErrMultipleParents indicates a cell claimed as a child by several neighbours.
	ErrMultipleParents = errors.New("peptide: cell has more than one parent")
	// ErrOrphan indicates a cell that cannot be reached from the root.
	ErrOrphan = errors.New("peptide: cell is not reachable from the root")
)
