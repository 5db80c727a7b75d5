package routing

import (
	"github.com/lintang-b-s/campus-route/pkg"
	"github.com/lintang-b-s/campus-route/pkg/datastructure"
)

type Status int

const (
	Found Status = iota
	NoPath
	Trivial
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoPath:
		return "no_path"
	case Trivial:
		return "trivial"
	}
	return "unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PathResult is the outcome of one search. Path is empty for NoPath and Trivial.
// Explored is the number of nodes expanded before the search stopped.
type PathResult struct {
	Start    datastructure.NodeID   `json:"start"`
	End      datastructure.NodeID   `json:"end"`
	Path     []datastructure.NodeID `json:"path"`
	Explored int                    `json:"explored"`
	Distance float64                `json:"distance"`
	Status   Status                 `json:"status"`
}

func (r PathResult) Found() bool {
	return r.Status == Found
}

// Err returns ErrNoPathFound for a NoPath result and nil otherwise.
func (r PathResult) Err() error {
	if r.Status != NoPath {
		return nil
	}
	return pkg.WrapErrorf(nil, pkg.ErrNoPathFound, "no path from %d to %d after exploring %d nodes", r.Start, r.End, r.Explored)
}
