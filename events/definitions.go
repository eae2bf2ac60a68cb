package events

import (
	"making-change/shared"
)

// PurseOpenedEvent starts a purse built by the register for a requested amount.
type PurseOpenedEvent struct {
	BaseEvent
	Requested shared.Cents `json:"requested"`
}

type DenominationAddedEvent struct {
	BaseEvent
	Denomination shared.Denomination `json:"denomination"`
	Count        int64               `json:"count"`
}

type DenominationRemovedEvent struct {
	BaseEvent
	Denomination shared.Denomination `json:"denomination"`
	Count        int64               `json:"count"`
}
