package validation_test

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/builder"
	"github.com/dmitrymomot/ruleset/pkg/marker"
	"github.com/dmitrymomot/ruleset/pkg/rule"
	"github.com/dmitrymomot/ruleset/pkg/schema"
	"github.com/dmitrymomot/ruleset/pkg/validation"
)

func newFactory(opts ...validation.Option) *validation.Factory {
	base := []validation.Option{
		validation.WithSchemaProvider(schema.NewMemoryProvider(fixtureColumns())),
		validation.WithEntities(&account{}, user{}),
	}
	return validation.New(append(base, opts...)...)
}

func TestFactory_ColumnRules(t *testing.T) {
	t.Parallel()

	cfg := validation.For[user](newFactory())

	t.Run("string column with length", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Nickname").Equal(rule.NewSet(&rule.LengthRule{Max: 50})))
		assert.True(t, cfg.Rules("Login").Equal(rule.NewSet(&rule.LengthRule{Max: 30})),
			"string columns never get a required mark")
	})

	t.Run("string column without length", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, cfg.Rules("Bio"))
	})

	t.Run("int32 precision is capped and scale forced", func(t *testing.T) {
		t.Parallel()

		want := rule.NewSet(rule.Required(), &rule.DecimalRule{Precision: 11, Scale: 0})
		assert.True(t, cfg.Rules("Age").Equal(want), "%v", cfg.Rules("Age").Rules())
	})

	t.Run("int64 precision is capped to 20", func(t *testing.T) {
		t.Parallel()

		r, ok := cfg.Rule("ID", rule.KindDecimal)
		require.True(t, ok)
		assert.Equal(t, &rule.DecimalRule{Precision: 20, Scale: 0}, r)
	})

	t.Run("pointer int16 keeps smaller precision", func(t *testing.T) {
		t.Parallel()

		r, ok := cfg.Rule("Score", rule.KindDecimal)
		require.True(t, ok)
		assert.Equal(t, &rule.DecimalRule{Precision: 5, Scale: 0}, r)
		assert.False(t, cfg.Rules("Score").Has(rule.MarkKind(rule.MarkRequired)))
	})

	t.Run("float keeps column precision and scale", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Balance").Equal(rule.NewSet(&rule.DecimalRule{Precision: 12, Scale: 2})))
	})

	t.Run("date columns", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("BirthDay").Equal(rule.NewSet(rule.Required())))
		assert.Nil(t, cfg.Rules("DeletedAt"))
	})

	t.Run("skipped columns", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, cfg.Rules("Active"), "booleans are ignored")
		assert.Nil(t, cfg.Rules("Ignored"), "db:\"-\" fields are unmapped")
		assert.Nil(t, cfg.Rules("Address"), "multi-column properties are skipped")
	})
}

func TestFactory_Idempotent(t *testing.T) {
	t.Parallel()

	provider := &countingProvider{next: schema.NewMemoryProvider(fixtureColumns())}
	f := validation.New(validation.WithSchemaProvider(provider))

	first := validation.For[user](f)
	second := f.Configuration(reflect.TypeFor[*user]())

	assert.Same(t, first, second)
	assert.Equal(t, first.Describe(), second.Describe())
	assert.Equal(t, int64(1), f.Builds())
	assert.Equal(t, int64(1), provider.calls.Load())
}

func TestFactory_ConcurrentSingleBuild(t *testing.T) {
	t.Parallel()

	provider := &countingProvider{
		next:  schema.NewMemoryProvider(fixtureColumns()),
		delay: 20 * time.Millisecond,
	}
	f := validation.New(
		validation.WithSchemaProvider(provider),
		validation.WithEntities(&account{}),
	)

	const goroutines = 64
	results := make([]*validation.Configuration, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = validation.For[userView](f)
				return
			}
			results[i] = validation.For[user](f)
		}(i)
	}
	wg.Wait()

	for i := 2; i < goroutines; i++ {
		assert.Same(t, results[i%2], results[i])
	}
	// user, userView and account.
	assert.Equal(t, int64(3), f.Builds())
	assert.Equal(t, int64(2), provider.calls.Load())
}

func TestFactory_Projection(t *testing.T) {
	t.Parallel()

	f := newFactory()
	cfg := validation.For[userView](f)

	t.Run("same-name property is inherited", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Login").Equal(rule.NewSet(&rule.LengthRule{Max: 30})))
		assert.True(t, cfg.Rules("Age").Equal(validation.For[user](f).Rules("Age")))
	})

	t.Run("redirect to another entity", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Contact").Equal(rule.NewSet(&rule.LengthRule{Max: 255})))
	})

	t.Run("redirect to another property", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Alias").Equal(rule.NewSet(&rule.LengthRule{Max: 30})))
	})

	t.Run("unknown entity is skipped", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, cfg.Rules("Ghost"))
	})

	t.Run("markers update inherited copies only", func(t *testing.T) {
		t.Parallel()

		assert.True(t, cfg.Rules("Nickname").Equal(rule.NewSet(&rule.LengthRule{Max: 10})))

		entity := validation.For[user](f)
		assert.True(t, entity.Rules("Nickname").Equal(rule.NewSet(&rule.LengthRule{Max: 50})))
	})
}

func TestFactory_MarkerRules(t *testing.T) {
	t.Parallel()

	t.Run("accessor update follows field create", func(t *testing.T) {
		t.Parallel()

		cfg := validation.For[accessorModel](validation.New())

		set := cfg.Rules("Name")
		require.Equal(t, 2, set.Len())
		r, ok := set.Get(rule.KindLength)
		require.True(t, ok)
		assert.Equal(t, 20, r.(*rule.LengthRule).Max)
		assert.True(t, set.Has(rule.MarkKind(rule.MarkRequired)))

		assert.True(t, cfg.Rules("Code").Equal(rule.NewSet(&rule.LengthRule{Min: 2, Max: 8})))
	})

	t.Run("markers update column rules", func(t *testing.T) {
		t.Parallel()

		provider := schema.NewMemoryProvider(nil)
		provider.Set("products",
			schema.Column{Property: "title", Length: 200, ColumnCount: 1},
			schema.Column{Property: "price", Nullable: true, Precision: 12, Scale: 4, ColumnCount: 1},
		)
		cfg := validation.For[product](validation.New(validation.WithSchemaProvider(provider)))

		want := rule.NewSet(&rule.LengthRule{Max: 80}, mustMark(t, rule.MarkNotBlank))
		assert.True(t, cfg.Rules("Title").Equal(want), "%v", cfg.Describe()["Title"])

		r, ok := cfg.Rule("Price", rule.KindDecimal)
		require.True(t, ok)
		assert.Equal(t, &rule.DecimalRule{Precision: 8, Scale: 2}, r)
		assert.True(t, cfg.Rules("Price").Has(rule.KindRange))
	})

	t.Run("invalid and unknown markers produce nothing", func(t *testing.T) {
		t.Parallel()

		type sloppy struct {
			A string `validate:"maxlen=abc"`
			B string `validate:"digits=2:5"`
			C string `validate:"omitempty,unknown=1"`
			D string `validate:"maxlen=5,maxlen=-1"`
		}
		cfg := validation.For[sloppy](validation.New())

		assert.Nil(t, cfg.Rules("A"))
		assert.Nil(t, cfg.Rules("B"))
		assert.Nil(t, cfg.Rules("C"))
		assert.True(t, cfg.Rules("D").Equal(rule.NewSet(&rule.LengthRule{Max: 5})))
	})

	t.Run("explicit builder wins over discovered", func(t *testing.T) {
		t.Parallel()

		reg := builder.NewRegistry()
		reg.MustRegister(doublingLength{})
		reg.MustRegisterDiscovered(builder.Defaults()...)

		type note struct {
			Text string `validate:"maxlen=7"`
		}
		cfg := validation.For[note](validation.New(validation.WithRegistry(reg)))
		r, ok := cfg.Rule("Text", rule.KindLength)
		require.True(t, ok)
		assert.Equal(t, 14, r.(*rule.LengthRule).Max)
	})
}

func mustMark(t *testing.T, m rule.Mark) rule.Rule {
	t.Helper()
	r, err := rule.NewMark(m)
	require.NoError(t, err)
	return r
}

// doublingLength is a custom builder doubling the declared max length.
type doublingLength struct{ builder.Length }

func (doublingLength) MarkerTypes() []marker.Type { return []marker.Type{marker.MaxLen} }

func (b doublingLength) Create(m marker.Marker) (rule.Rule, error) {
	n, err := m.Int()
	if err != nil {
		return nil, err
	}
	return rule.NewLength(n * 2)
}

func TestFactory_Degradation(t *testing.T) {
	t.Parallel()

	t.Run("failing schema provider", func(t *testing.T) {
		t.Parallel()

		f := validation.New(validation.WithSchemaProvider(failingProvider()))
		cfg := validation.For[user](f)
		assert.True(t, cfg.IsEmpty())
		assert.Equal(t, int64(1), f.Builds())
	})

	t.Run("no schema provider", func(t *testing.T) {
		t.Parallel()

		cfg := validation.For[accessorModel](validation.New(validation.WithSchemaProvider(nil)))
		assert.False(t, cfg.IsEmpty())
	})

	t.Run("non struct and nil types", func(t *testing.T) {
		t.Parallel()

		f := validation.New()
		assert.True(t, validation.For[int](f).IsEmpty())
		cfg := f.Configuration(nil)
		require.NotNil(t, cfg)
		assert.Nil(t, cfg.Model())
	})

	t.Run("cancelled context does not poison the cache", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := newFactory()
		cfg := f.ConfigurationContext(ctx, reflect.TypeFor[user]())
		assert.False(t, cfg.IsEmpty())
	})
}

func TestFactory_Warm(t *testing.T) {
	t.Parallel()

	t.Run("builds all types", func(t *testing.T) {
		t.Parallel()

		f := newFactory()
		err := f.Warm(context.Background(),
			reflect.TypeFor[user](), reflect.TypeFor[userView](), reflect.TypeFor[accessorModel]())
		require.NoError(t, err)
		assert.Equal(t, int64(4), f.Builds())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newFactory().Warm(ctx, reflect.TypeFor[user]())
		require.ErrorIs(t, err, validation.ErrWarmUp)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFactory_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	f1 := newFactory(validation.WithMetrics(reg))
	f2 := newFactory(validation.WithMetrics(reg))

	validation.For[user](f1)
	validation.For[userView](f2)

	count, err := testutil.GatherAndCount(reg, "ruleset_configuration_builds_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "entity and projection label series")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, validation.Default(), validation.Default())
	assert.NotNil(t, validation.Default().Registry())
}
