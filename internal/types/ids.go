package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tags an identifier with the kind of entity it names.
// The kind is decided once, when the id is minted, and travels with the value.
type Kind int

const (
	KindUnknown Kind = iota // Prefix not recognised; never resolves on a board
	KindGroup               // Names a group (container of items)
	KindItem                // Names an item inside a group
)

// Reserved textual prefixes used when an identifier crosses a string boundary
// (scenario files, JSON output). The prefix is separated from the value by '-'.
const (
	GroupPrefix = "group"
	ItemPrefix  = "item"

	// legacyGroupPrefix is accepted on input for boards minted with the older
	// "container-<uuid>" convention.
	legacyGroupPrefix = "container"
)

// ErrMalformedID indicates a raw identifier that does not carry a known prefix
var ErrMalformedID = errors.New("malformed identifier")

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// ID identifies a group or an item on the board
type ID struct {
	Kind  Kind
	Value string
}

// GroupID builds a group identifier from a bare value
func GroupID(value string) ID {
	return ID{Kind: KindGroup, Value: value}
}

// ItemID builds an item identifier from a bare value
func ItemID(value string) ID {
	return ID{Kind: KindItem, Value: value}
}

// NewGroupID mints a fresh group identifier
func NewGroupID() ID {
	return GroupID(uuid.NewString())
}

// NewItemID mints a fresh item identifier
func NewItemID() ID {
	return ItemID(uuid.NewString())
}

// IsZero reports whether the id was never set
func (id ID) IsZero() bool {
	return id.Kind == KindUnknown && id.Value == ""
}

// IsGroup reports whether the id names a group
func (id ID) IsGroup() bool {
	return id.Kind == KindGroup
}

// IsItem reports whether the id names an item
func (id ID) IsItem() bool {
	return id.Kind == KindItem
}

// String renders the id with its kind prefix so it round-trips through ParseID
func (id ID) String() string {
	switch id.Kind {
	case KindGroup:
		return GroupPrefix + "-" + id.Value
	case KindItem:
		return ItemPrefix + "-" + id.Value
	default:
		return id.Value
	}
}

// Classify determines the kind of a raw identifier from its prefix.
func Classify(raw string) (Kind, error) {
	prefix, value, ok := strings.Cut(raw, "-")
	if !ok || value == "" {
		return KindUnknown, fmt.Errorf("%w: %q", ErrMalformedID, raw)
	}
	switch prefix {
	case GroupPrefix, legacyGroupPrefix:
		return KindGroup, nil
	case ItemPrefix:
		return KindItem, nil
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrMalformedID, raw)
}

// ParseID converts a raw prefixed identifier into a tagged ID
func ParseID(raw string) (ID, error) {
	kind, err := Classify(raw)
	if err != nil {
		return ID{}, err
	}
	_, value, _ := strings.Cut(raw, "-")
	return ID{Kind: kind, Value: value}, nil
}

// MarshalText implements encoding.TextMarshaler so ids serialize as prefixed strings
func (id ID) MarshalText() ([]byte, error) {
	if id.Kind == KindUnknown {
		return nil, fmt.Errorf("%w: %q", ErrMalformedID, id.Value)
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
