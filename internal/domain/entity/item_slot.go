package entity

import "github.com/google/uuid"

// ItemSlot maps one user to one item kind and the quantity held. A slot with
// zero quantity is deleted rather than kept around.
type ItemSlot struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	ItemID   int // index into the catalog item registry
	Quantity int
}
