package cst

// NodeID addresses a node inside a Tree's arena. IDs are 1-based;
// NoNodeID marks absence.
type NodeID uint32

// NoNodeID is the invalid node id.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }
