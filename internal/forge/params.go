package forge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chromox/forge/internal/identity"
	"github.com/chromox/forge/internal/lore"
	"github.com/chromox/forge/internal/relic"
	"github.com/chromox/forge/internal/variance"
)

var (
	// ErrUnknownHeritage is returned by Check for a heritage the tables do not define.
	ErrUnknownHeritage = errors.New("unknown heritage")
	// ErrUnknownSkin is returned by Check for a skin the tables do not define.
	ErrUnknownSkin = errors.New("unknown skin")
)

// Mode identifies which lore variant a character carries.
type Mode string

const (
	ModePersona Mode = "persona"
	ModeRelic   Mode = "relic"
)

// Params are the optional generation parameters. Zero values are resolved
// from the stream, except Skin (empty means no skin) and Variance (zero
// means the base name is kept).
type Params struct {
	Heritage        string            `json:"heritage,omitempty" yaml:"heritage,omitempty"`
	Gender          identity.Gender   `json:"gender,omitempty" yaml:"gender,omitempty"`
	HeritageBlend   bool              `json:"heritage_blend,omitempty" yaml:"heritage_blend,omitempty"`
	Mononym         bool              `json:"mononym,omitempty" yaml:"mononym,omitempty"`
	MononymStrategy identity.Strategy `json:"mononym_strategy,omitempty" yaml:"mononym_strategy,omitempty"`
	Relic           bool              `json:"relic,omitempty" yaml:"relic,omitempty"`
	Era             relic.Era         `json:"era,omitempty" yaml:"era,omitempty"`
	Skin            string            `json:"skin,omitempty" yaml:"skin,omitempty"`
	Variance        float64           `json:"variance,omitempty" yaml:"variance,omitempty"`
}

// Mode returns the lore variant the parameters select.
func (p Params) Mode() Mode {
	if p.Relic {
		return ModeRelic
	}
	return ModePersona
}

// Check reports heritage and skin values that t does not define. GenerateWith
// itself accepts them, resolving an unknown heritage from the stream and
// ignoring an unknown skin, so callers taking user input check first.
func (p Params) Check(t *lore.Tables) error {
	if h := strings.ToLower(strings.TrimSpace(p.Heritage)); h != "" && h != identity.BlendHeritage {
		if _, ok := t.Culture(h); !ok {
			return fmt.Errorf("%w %q", ErrUnknownHeritage, p.Heritage)
		}
	}
	if sk := strings.ToLower(strings.TrimSpace(p.Skin)); sk != "" {
		if _, ok := t.Skins[sk]; !ok {
			return fmt.Errorf("%w %q (known: %s)", ErrUnknownSkin, p.Skin, strings.Join(t.SkinNames(), ", "))
		}
	}
	return nil
}

func (p Params) identityOptions() identity.Options {
	return identity.Options{
		Heritage:        p.Heritage,
		Gender:          p.Gender,
		HeritageBlend:   p.HeritageBlend,
		Mononym:         p.Mononym,
		MononymStrategy: p.MononymStrategy,
	}
}

// normalized clamps numeric parameters. Invalid enumerations are left as is
// and resolve from the stream like unset ones.
func (p Params) normalized() Params {
	p.Variance = variance.Clamp(p.Variance)
	return p
}
