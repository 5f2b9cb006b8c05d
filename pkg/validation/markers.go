package validation

import (
	"context"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/metadata"
)

// addMarkerRules applies field markers, then accessor markers, so accessor
// declarations have the last word on a rule.
func (f *Factory) addMarkerRules(ctx context.Context, cfg *Configuration, p metadata.Property) {
	for _, m := range p.FieldMarkers {
		f.applyMarker(ctx, cfg, p.Name, m)
	}
	for _, m := range p.AccessorMarkers {
		f.applyMarker(ctx, cfg, p.Name, m)
	}
}

func (f *Factory) applyMarker(ctx context.Context, cfg *Configuration, property string, m marker.Marker) {
	if !m.Type.IsConstraint() {
		return
	}
	b, ok := f.registry.Resolve(m.Type)
	if !ok {
		return
	}

	kind := b.Kind(m)
	if existing, ok := cfg.get(property, kind); ok {
		if err := b.Update(m, existing); err != nil {
			f.logger.DebugContext(ctx, "marker update ignored",
				logger.Component("validation"), logger.Model(cfg.model), logger.Property(property),
				logger.Marker(m.String()), logger.Error(err))
		}
		return
	}

	r, err := b.Create(m)
	if err != nil || r == nil {
		f.logger.DebugContext(ctx, "marker produced no rule",
			logger.Component("validation"), logger.Model(cfg.model), logger.Property(property),
			logger.Marker(m.String()), logger.Error(err))
		return
	}
	if r.Kind() != kind {
		f.logger.DebugContext(ctx, "builder created rule of unexpected kind, rule dropped",
			logger.Component("validation"), logger.Property(property),
			logger.Marker(m.String()), logger.RuleKind(r.Kind()))
		return
	}
	cfg.add(property, r)
}
