package patcher

import (
	"log/slog"

	"github.com/OCharnyshevich/headwear-patcher/internal/config"
	"github.com/OCharnyshevich/headwear-patcher/internal/gamedata"
)

// ItemSource is the view of the item database the patcher works on.
type ItemSource interface {
	Items() []string
	Item(id string) (*gamedata.TemplateItem, bool)
	IsOfBaseClass(id, baseClass string) bool
	ItemName(id string) string
}

// Result summarizes a patch pass.
type Result struct {
	Patched int
	// MissingProps lists matched items that had no properties to patch.
	MissingProps []string
}

// Patcher relaxes the slot restrictions of gear templates.
type Patcher struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates a Patcher for the given config and logger.
func New(cfg *config.Config, log *slog.Logger) *Patcher {
	return &Patcher{cfg: cfg, log: log}
}

// Match returns the override that applies to the item, if any. Face
// shield ids win over base class rules; base classes are tried in
// ascending order and the first one the item derives from is used.
func (p *Patcher) Match(items ItemSource, id string) (config.Override, bool) {
	if p.cfg.IsFaceShield(id) {
		return p.cfg.FaceShieldItemSettings, true
	}
	for _, base := range p.cfg.BaseClasses() {
		if items.IsOfBaseClass(id, base) {
			return p.cfg.ItemSettings[base], true
		}
	}
	return config.Override{}, false
}

// Patch walks every item once and clears the restriction flags selected
// by the matching override. Flags are only ever cleared, never set, so
// running Patch again changes nothing.
func (p *Patcher) Patch(items ItemSource) Result {
	var res Result

	for _, id := range items.Items() {
		ov, ok := p.Match(items, id)
		if !ok {
			continue
		}

		it, ok := items.Item(id)
		if !ok {
			continue
		}
		if it.Props == nil {
			res.MissingProps = append(res.MissingProps, id)
			if p.cfg.Debug {
				p.log.Warn("item properties missing", "id", id)
			}
			continue
		}

		Apply(it.Props, ov)
		res.Patched++
		if p.cfg.Debug {
			p.log.Info("patched item", "n", res.Patched, "name", items.ItemName(id), "id", id)
		}
	}

	p.log.Info("patch complete", "patched", res.Patched)
	return res
}

// Apply clears every flag whose override entry is true and empties the
// conflicting items list. Undeclared flags are written as false.
func Apply(props *gamedata.ItemProperties, ov config.Override) {
	props.BlocksHeadwear = unblock(props.BlocksHeadwear, ov[config.Headwear])
	props.BlocksEarpiece = unblock(props.BlocksEarpiece, ov[config.Earpiece])
	props.BlocksFaceCover = unblock(props.BlocksFaceCover, ov[config.FaceCover])
	props.BlocksEyewear = unblock(props.BlocksEyewear, ov[config.Eyewear])
	props.ConflictingItems = []string{}
}

func unblock(flag *bool, remove bool) *bool {
	v := !remove && flag != nil && *flag
	return &v
}
