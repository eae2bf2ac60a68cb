package app

import (
	"making-change/shared"
)

// --- Command Struct Definitions ---

type MakeChangeCommand struct {
	Amount shared.Cents
}

// AddToPurseCommand and RemoveFromPurseCommand act on the current purse when PurseID is empty.
type AddToPurseCommand struct {
	PurseID      string
	Denomination string
	Count        int64
}

type RemoveFromPurseCommand struct {
	PurseID      string
	Denomination string
	Count        int64
}

// --- Query Structures ---

type GetPurseQuery struct {
	PurseID string
}

type GetHistoryQuery struct {
	PurseID string
	Limit   int
	Skip    int
}
