package neonstreet

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ShopConfig is the file form of a Shop.
type ShopConfig struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Category string `yaml:"category"`
	Caption  string `yaml:"caption,omitempty"`
}

// StreetConfig is the file form of a Street. Shops may be omitted to reuse
// the scene-wide list.
type StreetConfig struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Shops []ShopConfig `yaml:"shops,omitempty"`
}

// LayoutConfig is the file form of LayoutParams.
type LayoutConfig struct {
	Mode           string    `yaml:"mode"` // "fractions" or "scrolling"
	Fractions      []float64 `yaml:"fractions"`
	EdgeFraction   float64   `yaml:"edge_fraction"`
	GroundFraction float64   `yaml:"ground_fraction"`
	ShopWidth      float64   `yaml:"shop_width"`
	ShopHeight     float64   `yaml:"shop_height"`
	Spacing        float64   `yaml:"spacing"`
	WorldMargin    float64   `yaml:"world_margin"`
}

// MusicConfig selects the background track.
type MusicConfig struct {
	Path     string  `yaml:"path"` // empty plays a generated drone
	Volume   float64 `yaml:"volume"`
	Autoplay bool    `yaml:"autoplay"`
}

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Shops          []ShopConfig   `yaml:"shops"`
	Streets        []StreetConfig `yaml:"streets"`
	StartStreet    int            `yaml:"start_street"`
	StartShop      int            `yaml:"start_shop"`
	ResetShop      int            `yaml:"reset_shop"` // negative: middle shop
	SwipeThreshold float64        `yaml:"swipe_threshold"`
	AnimationMS    int            `yaml:"animation_ms"`
	Motion         string         `yaml:"motion"` // "tween" or "follow"
	FollowDamping  float64        `yaml:"follow_damping"`
	Layout         LayoutConfig   `yaml:"layout"`
	Music          MusicConfig    `yaml:"music"`
}

// DefaultConfig returns the five-shop neon street.
func DefaultConfig() Config {
	lp := DefaultLayoutParams()
	return Config{
		Shops: []ShopConfig{
			{ID: "shop-1", Label: "YIELD OPTIMIZER", Category: "yield", Caption: "Compounding, hourly"},
			{ID: "shop-2", Label: "OTC DESK", Category: "otc", Caption: "Size? Ask me."},
			{ID: "shop-3", Label: "BRIDGE OPERATOR", Category: "bridge", Caption: "Any chain, any time"},
			{ID: "shop-4", Label: "SWAP/DEX", Category: "swap"},
			{ID: "shop-5", Label: "LENDING VAULT", Category: "lending", Caption: "Collateral welcome"},
		},
		Streets: []StreetConfig{
			{ID: "street-1", Name: "Neon Boulevard"},
			{ID: "street-2", Name: "Chrome Alley"},
			{ID: "street-3", Name: "Synth Market"},
			{ID: "street-4", Name: "Data Docks"},
		},
		StartStreet:    0,
		StartShop:      2,
		ResetShop:      -1,
		SwipeThreshold: DefaultSwipeThreshold,
		AnimationMS:    600,
		Motion:         "tween",
		FollowDamping:  0.1,
		Layout: LayoutConfig{
			Mode:           "fractions",
			Fractions:      lp.Fractions,
			EdgeFraction:   lp.EdgeFraction,
			GroundFraction: lp.GroundFraction,
			ShopWidth:      lp.ShopWidth,
			ShopHeight:     lp.ShopHeight,
			Spacing:        lp.Spacing,
			WorldMargin:    lp.WorldMargin,
		},
		Music: MusicConfig{Volume: -2},
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// A leading ~ in path is expanded.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem that would stop a scene from starting.
func (c Config) Validate() error {
	var errs []error

	if len(c.Streets) == 0 {
		errs = append(errs, ErrNoStreets)
	}
	seen := make(map[string]bool, len(c.Streets))
	for i, st := range c.Streets {
		if st.Name == "" {
			errs = append(errs, fmt.Errorf("street %d: empty name", i))
		} else if seen[st.Name] {
			errs = append(errs, fmt.Errorf("street %d: duplicate name %q", i, st.Name))
		}
		seen[st.Name] = true
		shops := st.Shops
		if len(shops) == 0 {
			shops = c.Shops
		}
		if len(shops) == 0 {
			errs = append(errs, fmt.Errorf("street %q: %w", st.Name, ErrNoShops))
		}
		for _, sh := range shops {
			if _, ok := ParseCategory(sh.Category); !ok {
				errs = append(errs, fmt.Errorf("shop %q: unknown category %q", sh.ID, sh.Category))
			}
		}
	}

	if c.StartStreet < 0 || c.StartStreet >= len(c.Streets) {
		errs = append(errs, fmt.Errorf("start_street %d: %w", c.StartStreet, ErrInvalidIndex))
	} else if n := len(c.streetShops(c.StartStreet)); c.StartShop < 0 || c.StartShop >= n {
		errs = append(errs, fmt.Errorf("start_shop %d: %w", c.StartShop, ErrInvalidIndex))
	}

	if c.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("swipe_threshold must be positive, got %v", c.SwipeThreshold))
	}
	if c.AnimationMS <= 0 {
		errs = append(errs, fmt.Errorf("animation_ms must be positive, got %d", c.AnimationMS))
	}
	switch c.Motion {
	case "tween":
	case "follow":
		if c.FollowDamping <= 0 || c.FollowDamping > 1 {
			errs = append(errs, fmt.Errorf("follow_damping must be in (0, 1], got %v", c.FollowDamping))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown motion %q", c.Motion))
	}

	errs = append(errs, c.Layout.validate()...)
	return errors.Join(errs...)
}

func (l LayoutConfig) validate() []error {
	var errs []error
	if l.Mode != "fractions" && l.Mode != "scrolling" {
		errs = append(errs, fmt.Errorf("unknown layout mode %q", l.Mode))
	}
	for i, f := range l.Fractions {
		if f <= 0 || f >= 1 {
			errs = append(errs, fmt.Errorf("layout fraction %d out of (0,1): %v", i, f))
		}
		if i > 0 && f <= l.Fractions[i-1] {
			errs = append(errs, fmt.Errorf("layout fractions must increase strictly at %d", i))
		}
	}
	if l.EdgeFraction < 0 || l.EdgeFraction >= 0.5 {
		errs = append(errs, fmt.Errorf("edge_fraction must be in [0, 0.5), got %v", l.EdgeFraction))
	}
	if l.GroundFraction <= 0 || l.GroundFraction > 1 {
		errs = append(errs, fmt.Errorf("ground_fraction must be in (0, 1], got %v", l.GroundFraction))
	}
	if l.ShopWidth <= 0 || l.ShopHeight <= 0 {
		errs = append(errs, fmt.Errorf("shop size must be positive, got %vx%v", l.ShopWidth, l.ShopHeight))
	}
	if l.Mode == "scrolling" && l.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing must not be negative, got %v", l.Spacing))
	}
	return errs
}

func (c Config) streetShops(i int) []ShopConfig {
	if len(c.Streets[i].Shops) > 0 {
		return c.Streets[i].Shops
	}
	return c.Shops
}

func shopsFrom(in []ShopConfig) []Shop {
	out := make([]Shop, len(in))
	for i, sc := range in {
		cat, _ := ParseCategory(sc.Category)
		out[i] = Shop{ID: sc.ID, Label: sc.Label, Category: cat, Caption: sc.Caption}
	}
	return out
}

// ShopList returns the scene-wide shops.
func (c Config) ShopList() []Shop {
	return shopsFrom(c.Shops)
}

// StreetList returns the streets; streets without shops keep an empty list
// and inherit ShopList in the Navigator.
func (c Config) StreetList() []Street {
	out := make([]Street, len(c.Streets))
	for i, sc := range c.Streets {
		out[i] = Street{ID: sc.ID, Name: sc.Name}
		if len(sc.Shops) > 0 {
			out[i].Shops = shopsFrom(sc.Shops)
		}
	}
	return out
}

// NavigatorOptions converts the start fields.
func (c Config) NavigatorOptions() NavigatorOptions {
	return NavigatorOptions{
		DefaultShops: c.ShopList(),
		StartStreet:  c.StartStreet,
		StartShop:    c.StartShop,
		ResetShop:    c.ResetShop,
	}
}

// LayoutParams converts the layout section.
func (c Config) LayoutParams() LayoutParams {
	mode := LayoutFractions
	if c.Layout.Mode == "scrolling" {
		mode = LayoutScrolling
	}
	return LayoutParams{
		Mode:           mode,
		Fractions:      c.Layout.Fractions,
		EdgeFraction:   c.Layout.EdgeFraction,
		GroundFraction: c.Layout.GroundFraction,
		ShopWidth:      c.Layout.ShopWidth,
		ShopHeight:     c.Layout.ShopHeight,
		Spacing:        c.Layout.Spacing,
		WorldMargin:    c.Layout.WorldMargin,
	}
}

// MotionMode converts the motion field.
func (c Config) MotionMode() MotionMode {
	if c.Motion == "follow" {
		return MotionFollow
	}
	return MotionTween
}

// AnimationDuration converts AnimationMS.
func (c Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}
