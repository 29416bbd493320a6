package neonstreet

import "errors"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Direction selects a neighbour in an ordered sequence of shops or streets.
type Direction uint8

const (
	Previous Direction = iota // toward index 0 (leftward on screen)
	Next                      // toward the last index (rightward on screen)
)

// String returns "previous" or "next".
func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Category tags a shop for decoration only. Navigation never inspects it.
type Category uint8

const (
	CategoryYield Category = iota
	CategoryOTC
	CategoryBridge
	CategorySwap
	CategoryLending
)

var categoryNames = [...]string{"yield", "otc", "bridge", "swap", "lending"}

// String returns the lower-case category name used in config files.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// ParseCategory maps a config name back to a Category.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Shop is a navigable point of interest. Shops are configuration data and
// never change after startup.
type Shop struct {
	ID       string
	Label    string
	Category Category
	Caption  string
}

// Street is a named, ordered group of shops. A street with no shops of its
// own uses the scene-wide shop list.
type Street struct {
	ID    string
	Name  string
	Shops []Shop
}

// Sentinel errors returned by constructors and config validation.
var (
	ErrNoShops          = errors.New("neonstreet: no shops configured")
	ErrNoStreets        = errors.New("neonstreet: no streets configured")
	ErrInvalidViewport  = errors.New("neonstreet: viewport must have positive area")
	ErrInvalidIndex     = errors.New("neonstreet: index out of range")
	ErrAudioUnavailable = errors.New("neonstreet: audio unavailable")
)

// EventType identifies a kind of navigation change.
type EventType uint8

const (
	EventShopChanged   EventType = iota // active shop moved within the street
	EventStreetChanged                  // active street changed; shop index was reset
)

func (t EventType) String() string {
	switch t {
	case EventShopChanged:
		return "shop-changed"
	case EventStreetChanged:
		return "street-changed"
	default:
		return "unknown"
	}
}

// NavigationEvent describes one successful navigation change.
type NavigationEvent struct {
	Type        EventType
	ShopIndex   int
	StreetIndex int
	ShopID      string
	StreetName  string
}

// EventStore is the interface for optional ECS integration.
// When set on a Navigator, every successful change is forwarded to it.
type EventStore interface {
	EmitEvent(event NavigationEvent)
}
