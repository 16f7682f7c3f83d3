package obj

import (
	"fmt"
	"strings"

	"github.com/milk9111/parkour/prefabs"
)

type TileKind int

const (
	TileConcrete TileKind = iota + 1
	TilePlatform
	TileCar
	TileDumpster
	TileTruck
	TileFridge
	TileCrate
	TileBrick
)

var tileKindNames = map[string]TileKind{
	"concrete": TileConcrete,
	"platform": TilePlatform,
	"car":      TileCar,
	"dumpster": TileDumpster,
	"truck":    TileTruck,
	"fridge":   TileFridge,
	"crate":    TileCrate,
	"brick":    TileBrick,
}

func (k TileKind) String() string {
	for name, v := range tileKindNames {
		if v == k {
			return name
		}
	}
	return fmt.Sprintf("tile(%d)", int(k))
}

// ParseTileKind resolves a kind tag from a level document.
func ParseTileKind(tag string) (TileKind, bool) {
	k, ok := tileKindNames[strings.ToLower(strings.TrimSpace(tag))]
	return k, ok
}

type ItemKind int

const (
	ItemCoin ItemKind = iota + 1
	ItemGem
	ItemStar
)

var itemKindNames = map[string]ItemKind{
	"coin": ItemCoin,
	"gem":  ItemGem,
	"star": ItemStar,
}

func (k ItemKind) String() string {
	for name, v := range itemKindNames {
		if v == k {
			return name
		}
	}
	return fmt.Sprintf("item(%d)", int(k))
}

func ParseItemKind(tag string) (ItemKind, bool) {
	k, ok := itemKindNames[strings.ToLower(strings.TrimSpace(tag))]
	return k, ok
}

// KindInfo is the per-kind data looked up when a level is built and drawn.
// W and H are in tile units.
type KindInfo struct {
	W, H  float64
	Value int
	Color string
}

// Kinds is the lookup table from kind to size, value and look. It is built
// once from kinds.yaml; level loading never inspects kind tags after that.
type Kinds struct {
	Tiles map[TileKind]KindInfo
	Items map[ItemKind]KindInfo
}

// NewKinds resolves every tag in spec. Tags the runtime does not know are an
// error so that a typo in kinds.yaml cannot silently drop entities.
func NewKinds(spec *prefabs.KindsSpec) (*Kinds, error) {
	if spec == nil {
		return nil, fmt.Errorf("kinds: spec is nil")
	}
	k := &Kinds{
		Tiles: make(map[TileKind]KindInfo, len(spec.Tiles)),
		Items: make(map[ItemKind]KindInfo, len(spec.Items)),
	}
	for tag, ks := range spec.Tiles {
		kind, ok := ParseTileKind(tag)
		if !ok {
			return nil, fmt.Errorf("kinds: unknown tile kind %q", tag)
		}
		info, err := kindInfoFromSpec(tag, ks)
		if err != nil {
			return nil, err
		}
		k.Tiles[kind] = info
	}
	for tag, ks := range spec.Items {
		kind, ok := ParseItemKind(tag)
		if !ok {
			return nil, fmt.Errorf("kinds: unknown item kind %q", tag)
		}
		info, err := kindInfoFromSpec(tag, ks)
		if err != nil {
			return nil, err
		}
		k.Items[kind] = info
	}
	return k, nil
}

func kindInfoFromSpec(tag string, ks prefabs.KindSpec) (KindInfo, error) {
	if ks.Size[0] <= 0 || ks.Size[1] <= 0 {
		return KindInfo{}, fmt.Errorf("kinds: %s: size must be positive, got %v", tag, ks.Size)
	}
	if ks.Value < 0 {
		return KindInfo{}, fmt.Errorf("kinds: %s: value must not be negative", tag)
	}
	return KindInfo{
		W:     ks.Size[0],
		H:     ks.Size[1],
		Value: ks.Value,
		Color: ks.Color,
	}, nil
}

// LoadKinds reads kinds.yaml through prefabs and builds the table.
func LoadKinds() (*Kinds, error) {
	spec, err := prefabs.LoadKindsSpec()
	if err != nil {
		return nil, err
	}
	return NewKinds(spec)
}

func (k *Kinds) Tile(kind TileKind) (KindInfo, bool) {
	if k == nil {
		return KindInfo{}, false
	}
	info, ok := k.Tiles[kind]
	return info, ok
}

func (k *Kinds) Item(kind ItemKind) (KindInfo, bool) {
	if k == nil {
		return KindInfo{}, false
	}
	info, ok := k.Items[kind]
	return info, ok
}
