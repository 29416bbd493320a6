package neonstreet

import "fmt"

// NavigatorOptions configures the starting position of a Navigator.
type NavigatorOptions struct {
	// DefaultShops is used by every street that lists no shops of its own.
	DefaultShops []Shop
	StartStreet  int
	StartShop    int
	// ResetShop is the shop index selected after a street change. Negative
	// means the middle shop of the new street. Values past the end of a
	// shorter street are clamped to its last shop.
	ResetShop int
}

type changeHandler struct {
	id uint32
	fn func(NavigationEvent)
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id  uint32
	nav *Navigator
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.nav == nil {
		return
	}
	s := h.nav.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			h.nav.handlers = s[:len(s)-1]
			return
		}
	}
}

// Navigator holds the active shop and street indices. Every mutation keeps
// both indices in range: requests past either end are absorbed, never
// wrapped and never reported as errors.
type Navigator struct {
	streets     []Street
	shopIndex   int
	streetIndex int
	resetShop   int

	handlers []changeHandler
	nextID   uint32
	store    EventStore
}

// NewNavigator resolves each street's shop list and validates the start
// position.
func NewNavigator(streets []Street, opts NavigatorOptions) (*Navigator, error) {
	if len(streets) == 0 {
		return nil, ErrNoStreets
	}
	resolved := make([]Street, len(streets))
	for i, st := range streets {
		if len(st.Shops) == 0 {
			st.Shops = opts.DefaultShops
		}
		if len(st.Shops) == 0 {
			return nil, fmt.Errorf("street %q: %w", st.Name, ErrNoShops)
		}
		resolved[i] = st
	}
	if opts.StartStreet < 0 || opts.StartStreet >= len(resolved) {
		return nil, fmt.Errorf("start street %d: %w", opts.StartStreet, ErrInvalidIndex)
	}
	if n := len(resolved[opts.StartStreet].Shops); opts.StartShop < 0 || opts.StartShop >= n {
		return nil, fmt.Errorf("start shop %d: %w", opts.StartShop, ErrInvalidIndex)
	}
	return &Navigator{
		streets:     resolved,
		shopIndex:   opts.StartShop,
		streetIndex: opts.StartStreet,
		resetShop:   opts.ResetShop,
	}, nil
}

// Step moves one shop toward dir and returns the resulting index. At either
// end of the street the index is left unchanged.
func (n *Navigator) Step(dir Direction) int {
	switch {
	case dir == Previous && n.shopIndex > 0:
		n.shopIndex--
	case dir == Next && n.shopIndex < n.ShopCount()-1:
		n.shopIndex++
	default:
		return n.shopIndex
	}
	n.notify(EventShopChanged)
	return n.shopIndex
}

// SelectShop makes shop i active directly, as when the pointer lands on it.
// It reports whether the index changed.
func (n *Navigator) SelectShop(i int) bool {
	if i < 0 || i >= n.ShopCount() || i == n.shopIndex {
		return false
	}
	n.shopIndex = i
	n.notify(EventShopChanged)
	return true
}

// JumpToStreet activates the street with exactly this name and resets the
// shop index. Unknown names leave the state unchanged and return false.
// Naming the active street still counts as a jump and resets the shop.
func (n *Navigator) JumpToStreet(name string) bool {
	for i := range n.streets {
		if n.streets[i].Name == name {
			n.enterStreet(i)
			return true
		}
	}
	return false
}

// StepStreet moves one street toward dir, clamped like Step. It reports
// whether the street changed.
func (n *Navigator) StepStreet(dir Direction) bool {
	i := n.streetIndex
	switch {
	case dir == Previous && i > 0:
		i--
	case dir == Next && i < len(n.streets)-1:
		i++
	default:
		return false
	}
	n.enterStreet(i)
	return true
}

func (n *Navigator) enterStreet(i int) {
	n.streetIndex = i
	n.shopIndex = n.ResetIndex(i)
	n.notify(EventStreetChanged)
}

// ResetIndex returns the shop index selected when entering street i.
func (n *Navigator) ResetIndex(street int) int {
	count := len(n.streets[street].Shops)
	if n.resetShop < 0 {
		return (count - 1) / 2
	}
	return min(n.resetShop, count-1)
}

// ShopIndex returns the active shop index.
func (n *Navigator) ShopIndex() int { return n.shopIndex }

// StreetIndex returns the active street index.
func (n *Navigator) StreetIndex() int { return n.streetIndex }

// ShopCount returns the number of shops on the active street.
func (n *Navigator) ShopCount() int { return len(n.streets[n.streetIndex].Shops) }

// ActiveStreet returns the active street.
func (n *Navigator) ActiveStreet() Street { return n.streets[n.streetIndex] }

// ActiveShop returns the active shop.
func (n *Navigator) ActiveShop() Shop { return n.streets[n.streetIndex].Shops[n.shopIndex] }

// Shops returns the active street's shops. The returned slice MUST NOT be
// mutated.
func (n *Navigator) Shops() []Shop { return n.streets[n.streetIndex].Shops }

// Streets returns every street in configuration order.
func (n *Navigator) Streets() []Street {
	out := make([]Street, len(n.streets))
	copy(out, n.streets)
	return out
}

// AtFirstShop reports whether a Previous step would be absorbed.
func (n *Navigator) AtFirstShop() bool { return n.shopIndex == 0 }

// AtLastShop reports whether a Next step would be absorbed.
func (n *Navigator) AtLastShop() bool { return n.shopIndex == n.ShopCount()-1 }

// AtFirstStreet reports whether a Previous street step would be absorbed.
func (n *Navigator) AtFirstStreet() bool { return n.streetIndex == 0 }

// AtLastStreet reports whether a Next street step would be absorbed.
func (n *Navigator) AtLastStreet() bool { return n.streetIndex == len(n.streets)-1 }

// OnChange registers a callback fired after every successful mutation.
func (n *Navigator) OnChange(fn func(NavigationEvent)) CallbackHandle {
	n.nextID++
	id := n.nextID
	n.handlers = append(n.handlers, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, nav: n}
}

// SetEventStore sets the optional ECS bridge.
func (n *Navigator) SetEventStore(store EventStore) {
	n.store = store
}

func (n *Navigator) notify(t EventType) {
	st := n.streets[n.streetIndex]
	evt := NavigationEvent{
		Type:        t,
		ShopIndex:   n.shopIndex,
		StreetIndex: n.streetIndex,
		ShopID:      st.Shops[n.shopIndex].ID,
		StreetName:  st.Name,
	}
	logger.Debug("navigation changed",
		"street", evt.StreetName, "shop", evt.ShopID, "index", evt.ShopIndex)
	for _, h := range n.handlers {
		h.fn(evt)
	}
	if n.store != nil {
		n.store.EmitEvent(evt)
	}
}
