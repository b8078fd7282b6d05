package domain

import (
	"database/sql/driver"
	"fmt"
)

// ItemKind identifies one of the closed set of game items
type ItemKind int

// usedOffset is the legacy storage marker added to a fresh item's base value
// once the item has been consumed. It is not an item itself; decoding it as
// one is a programming error, not a runtime outcome.
const usedOffset = 1

const (
	// ItemMythicalChocolates is the sentinel item. It is never reported as
	// used, regardless of its stored encoding.
	ItemMythicalChocolates ItemKind = -1

	ItemGun             ItemKind = 2
	ItemPoison          ItemKind = 4
	ItemBat             ItemKind = 6
	ItemBug             ItemKind = 8
	ItemVoteCancellor   ItemKind = 10
	ItemVoteDoubler     ItemKind = 12
	ItemVoteManipulator ItemKind = 14
)

var itemKindNames = map[ItemKind]string{
	ItemMythicalChocolates: "mythical_chocolates",
	ItemGun:                "gun",
	ItemPoison:             "poison",
	ItemBat:                "bat",
	ItemBug:                "bug",
	ItemVoteCancellor:      "vote_cancellor",
	ItemVoteDoubler:        "vote_doubler",
	ItemVoteManipulator:    "vote_manipulator",
}

// Valid reports whether k is a member of the closed item set
func (k ItemKind) Valid() bool {
	_, ok := itemKindNames[k]
	return ok
}

// String returns the item kind name
func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("item(%d)", int(k))
}

// Item is a game item held by a player, represented as an explicit (kind,
// used) pair. The legacy arithmetic encoding — even base value, +1 once
// used, -1 sentinel — only exists at the storage boundary, so persisted
// rows stay wire compatible.
type Item struct {
	Kind ItemKind `json:"kind"`
	Used bool     `json:"used"`
}

// NewItem creates a fresh item of the given kind
func NewItem(kind ItemKind) (Item, error) {
	if !kind.Valid() {
		return Item{}, NewProgrammingError(fmt.Sprintf("invalid item kind %d", int(kind)), nil)
	}
	return Item{Kind: kind}, nil
}

// IsUsed reports whether the item's single-use effect has been consumed.
// The sentinel item is always reported as unused; the exemption applies to
// this query only, not to the Use transition.
func (i Item) IsUsed() bool {
	if i.Kind == ItemMythicalChocolates {
		return false
	}
	return i.Used
}

// Use returns the used form of a fresh item. Using an already-used item is
// an invalid state transition, never a silent no-op.
func (i Item) Use() (Item, error) {
	if i.Used {
		return Item{}, NewInvalidStateError(ErrCodeItemAlreadyUsed, "This item has already been used")
	}
	return Item{Kind: i.Kind, Used: true}, nil
}

// String returns a readable form such as "used gun"
func (i Item) String() string {
	if i.Used {
		return "used " + i.Kind.String()
	}
	return i.Kind.String()
}

// EncodedValue translates the item to its legacy integer encoding
func (i Item) EncodedValue() int64 {
	value := int64(i.Kind)
	if i.Used {
		value += usedOffset
	}
	return value
}

// ItemFromValue translates a legacy integer encoding back into an item.
// The bare used marker is rejected as a programming error. The value 0
// (sentinel plus offset) decodes to used mythical chocolates; the upstream
// encoding left that slot undefined.
func ItemFromValue(value int64) (Item, error) {
	if value == usedOffset {
		return Item{}, NewProgrammingError("the used marker is not to be used as an item", nil)
	}
	if value == int64(ItemMythicalChocolates) {
		return Item{Kind: ItemMythicalChocolates}, nil
	}
	if value == int64(ItemMythicalChocolates)+usedOffset {
		return Item{Kind: ItemMythicalChocolates, Used: true}, nil
	}

	used := value%2 != 0
	kind := ItemKind(value)
	if used {
		kind = ItemKind(value - usedOffset)
	}
	if !kind.Valid() {
		return Item{}, NewProgrammingError(fmt.Sprintf("unknown item encoding %d", value), nil)
	}
	return Item{Kind: kind, Used: used}, nil
}

// Value implements the driver.Valuer interface so the legacy encoding is
// what lands in the item column
func (i Item) Value() (driver.Value, error) {
	return i.EncodedValue(), nil
}

// Scan implements the sql.Scanner interface
func (i *Item) Scan(value interface{}) error {
	if value == nil {
		return fmt.Errorf("cannot scan NULL into Item, use *Item")
	}
	raw, ok := value.(int64)
	if !ok {
		return fmt.Errorf("failed to scan Item value: %v", value)
	}
	item, err := ItemFromValue(raw)
	if err != nil {
		return err
	}
	*i = item
	return nil
}
