package models

// HexValue is the raw hex run matched for a revision hash.
type HexValue string

// BranchStatus describes the state of a branch's upstream.
type BranchStatus int

const (
	// StatusActive means the upstream exists, or no upstream is tracked.
	StatusActive BranchStatus = iota
	// StatusDeleted means git reported the upstream as [gone].
	StatusDeleted
)

func (s BranchStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDeleted:
		return "gone"
	}
	return "unknown"
}

// BranchLine is one parsed line of `git branch -vv`.
type BranchLine struct {
	Name    string
	Status  BranchStatus
	Hash    HexValue
	Comment string
}

func (b BranchLine) IsGone() bool {
	return b.Status == StatusDeleted
}
