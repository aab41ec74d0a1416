package catalog

import "fmt"

// Item describes one entry in the item registry. Items are static flavor
// data; a user's holdings live in entity.ItemSlot.
type Item struct {
	ID          int
	Name        string
	Description string
	Price       int
	Buyable     bool
	Giftable    bool
	Usable      bool
}

// Items is the immutable item registry, indexed by Item.ID.
type Items struct {
	byID     map[int]Item
	petalIDs map[string]int // petal item ID per plain color

	Paperclip      Item
	Fertilizer     Item
	Coin           Item
	Fence          Item
	ChristmasCheer Item
}

// NewItems builds the item registry. IDs are assigned in registration order
// and are stable as long as the registration order does not change.
func NewItems() *Items {
	items := &Items{
		byID:     make(map[int]Item),
		petalIDs: make(map[string]int),
	}

	items.Paperclip = items.register(Item{
		Name:        "paper clip",
		Description: "A length of wire bent into flat loops that is used to hold papers together. Origin unknown.",
	})
	items.Fertilizer = items.register(Item{
		Name:        "ez-grow fertilizer",
		Description: "A bottle of EZ-Grow premium plant fertilizer. When applied, will increase plant growth rate by 1.5x for 3 days.",
		Price:       75,
		Buyable:     true,
		Giftable:    true,
		Usable:      true,
	})
	for _, color := range ColorsPlain {
		petal := items.register(Item{
			Name:        fmt.Sprintf("flower petal (%s)", color),
			Description: fmt.Sprintf("A fallen petal from a plant with %s blooming flowers.", color),
			Giftable:    true,
		})
		items.petalIDs[color] = petal.ID
	}
	items.Coin = items.register(Item{
		Name:        "coin",
		Description: "A copper coin with a portrait of a long-dead cosmonaut on it.",
	})
	items.Fence = items.register(Item{
		Name:        "picket fence",
		Description: "A tiny picket fence that keeps strangers away from your plant.",
		Price:       500,
		Buyable:     true,
		Usable:      true,
	})
	items.ChristmasCheer = items.register(Item{
		Name:        "christmas cheer",
		Description: "A dash of holiday spirit. Decorates your plant for two days.",
		Giftable:    true,
		Usable:      true,
	})

	return items
}

func (i *Items) register(item Item) Item {
	item.ID = len(i.byID) + 1
	i.byID[item.ID] = item
	return item
}

// Lookup returns the item with the given ID, if registered.
func (i *Items) Lookup(id int) (Item, bool) {
	item, ok := i.byID[id]
	return item, ok
}

// Petal returns the petal item for a plain flower color.
func (i *Items) Petal(color string) (Item, bool) {
	id, ok := i.petalIDs[color]
	if !ok {
		return Item{}, false
	}
	return i.byID[id], true
}

// All returns every registered item, keyed by ID.
func (i *Items) All() map[int]Item {
	out := make(map[int]Item, len(i.byID))
	for id, item := range i.byID {
		out[id] = item
	}
	return out
}
