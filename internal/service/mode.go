package service

import "fmt"

// MutationMode selects how read-modify-write operations reach the store.
type MutationMode string

const (
	// ModeSequential issues the select and the update as separate statements.
	// Concurrent likes on one post may lose an update.
	ModeSequential MutationMode = "sequential"
	// ModeAtomic folds counters into one statement and wraps soft-delete
	// toggles in a transaction holding a row lock.
	ModeAtomic MutationMode = "atomic"
)

func ParseMutationMode(s string) (MutationMode, error) {
	switch MutationMode(s) {
	case "", ModeSequential:
		return ModeSequential, nil
	case ModeAtomic:
		return ModeAtomic, nil
	default:
		return "", fmt.Errorf("unknown mutation mode %q", s)
	}
}
