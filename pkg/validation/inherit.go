package validation

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/metadata"
	"github.com/dmitrymomot/ruleset/pkg/model"
)

// addInheritedRules copies entity rules into a projection. Each property
// targets the same-named property of the projected entity unless its inherit
// tag names another property or another entity table. Unresolvable targets
// are skipped.
func (f *Factory) addInheritedRules(ctx context.Context, cfg *Configuration, t reflect.Type, props []metadata.Property) {
	entityType, _ := model.EntityOf(t)

	for _, p := range props {
		target, name := entityType, p.Name
		if p.Redirect != nil {
			if p.Redirect.Property != "" {
				name = p.Redirect.Property
			}
			if p.Redirect.Entity != "" {
				target = f.entities[p.Redirect.Entity]
			}
		}
		target = metadata.Indirect(target)
		// Only entities are followed: their derivation never recurses, which
		// keeps nested builds one level deep.
		if target == nil || !model.IsEntity(target) {
			f.logger.DebugContext(ctx, "inheritance target not resolved",
				logger.Component("validation"), logger.Model(t), logger.Property(p.Name))
			continue
		}

		source := f.ConfigurationContext(ctx, target)
		if rules := source.rules[name]; rules.Len() > 0 {
			cfg.inherit(p.Name, rules)
		}
	}
}
