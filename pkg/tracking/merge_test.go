package tracking

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ga", "ga-"},
		{"ga-", "ga-"},
		{"-", "-"},
		{"a-b", "a-b-"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrefix(tt.in))
		})
	}
}

func TestMergeWithoutPrefix(t *testing.T) {
	for _, ns := range []Namespace{NamespaceGA, NamespaceUA, "custom"} {
		t.Run(string(ns), func(t *testing.T) {
			attrs, err := Merge(Default(), In(ns, PropertyBag{"name": "Name prop"}))
			require.NoError(t, err)
			assert.Equal(t, AttributeMap{"data-name": "Name prop"}, attrs)
		})
	}
}

func TestMergeWithPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"ga", "data-ga-name"},
		{"ga-", "data-ga-name"},
		{"ua", "data-ua-name"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			cfg := Provide(WithPrefix(NamespaceGA, tt.prefix))
			attrs, err := Merge(cfg, GA(PropertyBag{"name": "Name prop"}))
			require.NoError(t, err)
			assert.Equal(t, AttributeMap{tt.want: "Name prop"}, attrs)
		})
	}
}

func TestMergeNamingConventions(t *testing.T) {
	for _, prefix := range []string{"ga", "ua"} {
		t.Run(prefix, func(t *testing.T) {
			ns := Namespace(prefix)
			cfg := Provide(WithPrefix(ns, prefix))
			attrs, err := Merge(cfg, In(ns, PropertyBag{
				"regular":    "Regular prop",
				"camelCase":  "Camel case prop",
				"snake_case": "Snake case prop",
				"kebab-case": "Kebab case prop",
			}))
			require.NoError(t, err)

			assert.Equal(t, AttributeMap{
				fmt.Sprintf("data-%s-regular", prefix):    "Regular prop",
				fmt.Sprintf("data-%s-camel-case", prefix): "Camel case prop",
				fmt.Sprintf("data-%s-snake-case", prefix): "Snake case prop",
				fmt.Sprintf("data-%s-kebab-case", prefix): "Kebab case prop",
			}, attrs)
		})
	}
}

func TestMergeMultipleNamespaces(t *testing.T) {
	attrs, err := Merge(Default(),
		GA(PropertyBag{"google": "Newer"}),
		UA(PropertyBag{"universal": "Older"}),
	)
	require.NoError(t, err)
	assert.Equal(t, AttributeMap{"data-google": "Newer", "data-universal": "Older"}, attrs)
}

func TestMergeIndependentPrefixes(t *testing.T) {
	cfg := Provide(WithPrefix(NamespaceGA, "ga"), WithPrefix(NamespaceUA, "ua"))
	attrs, err := Merge(cfg,
		GA(PropertyBag{"name": "g"}),
		UA(PropertyBag{"name": "u"}),
	)
	require.NoError(t, err)
	assert.Equal(t, AttributeMap{"data-ga-name": "g", "data-ua-name": "u"}, attrs)
}

func TestMergeLaterNamespaceWins(t *testing.T) {
	a := In("a", PropertyBag{"X": "from a", "onlyA": 1})
	b := In("b", PropertyBag{"X": "from b"})

	attrs, err := Merge(Default(), a, b)
	require.NoError(t, err)
	assert.Equal(t, "from b", attrs["data-x"])
	assert.Equal(t, 1, attrs["data-only-a"])

	attrs, err = Merge(Default(), b, a)
	require.NoError(t, err)
	assert.Equal(t, "from a", attrs["data-x"])
}

func TestMergeCollisionInsideBagIsDeterministic(t *testing.T) {
	bag := PropertyBag{"fooBar": "camel", "foo_bar": "snake", "foo-bar": "kebab"}
	for i := 0; i < 20; i++ {
		attrs, err := Merge(Default(), GA(bag))
		require.NoError(t, err)
		// Sorted order: "foo-bar" < "fooBar" < "foo_bar".
		assert.Equal(t, AttributeMap{"data-foo-bar": "snake"}, attrs)
	}
}

func TestMergeValuesPassThrough(t *testing.T) {
	value := struct{ N int }{N: 3}
	attrs, err := Merge(Default(), GA(PropertyBag{"obj": value, "nil": nil}))
	require.NoError(t, err)
	assert.Equal(t, value, attrs["data-obj"])
	v, ok := attrs["data-nil"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestMergeCustomConverter(t *testing.T) {
	cfg := Provide(WithConverter(Identity), WithPrefix(NamespaceGA, "x"))
	attrs, err := Merge(cfg, GA(PropertyBag{"camelCase": true}))
	require.NoError(t, err)
	assert.Equal(t, AttributeMap{"data-x-camelCase": true}, attrs)
}

func TestMergeEmpty(t *testing.T) {
	attrs, err := Merge(Default())
	require.NoError(t, err)
	assert.Empty(t, attrs)
	assert.NotNil(t, attrs)

	attrs, err = Merge(Default(), GA(nil))
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestMergeMissingConfig(t *testing.T) {
	attrs, err := Merge(nil, GA(PropertyBag{"name": "x"}))
	assert.Nil(t, attrs)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrConfigurationMissing))
}

func TestMergeZeroConfig(t *testing.T) {
	var attrs AttributeMap
	var err error
	assert.NotPanics(t, func() {
		attrs, err = Merge(&NamingConfig{}, GA(PropertyBag{"eventName": "x"}))
	})
	require.NoError(t, err)
	assert.Equal(t, AttributeMap{"data-event-name": "x"}, attrs)

	want, err := Merge(Default(), GA(PropertyBag{"eventName": "x"}))
	require.NoError(t, err)
	assert.Equal(t, want, attrs)
}

func TestMergeIsIdempotent(t *testing.T) {
	cfg := Provide(WithPrefix(NamespaceUA, "ua"))
	in := []NamespaceProps{
		GA(PropertyBag{"a": 1, "bC": "x"}),
		UA(PropertyBag{"a": 2}),
	}

	first, err := Merge(cfg, in...)
	require.NoError(t, err)
	second, err := Merge(cfg, in...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAttributeName(t *testing.T) {
	cfg := Provide(WithPrefix(NamespaceGA, "ga"))
	assert.Equal(t, "data-ga-event-name", AttributeName(cfg, NamespaceGA, "eventName"))
	assert.Equal(t, "data-event-name", AttributeName(cfg, NamespaceUA, "eventName"))
}
