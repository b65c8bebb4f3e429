package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

func TestCollectIdentifiersPlainName(t *testing.T) {
	assert.Equal(t, []string{"x"}, CollectIdentifiers(&jsast.Identifier{Name: "x"}))
}

func TestCollectIdentifiersObjectPattern(t *testing.T) {
	p := &jsast.ObjectPattern{
		Properties: []*jsast.ObjectProperty{
			{Key: "a", Value: &jsast.Identifier{Name: "a"}},
			{Key: "b", Value: &jsast.Identifier{Name: "c"}},
		},
		Rest: &jsast.Identifier{Name: "rest"},
	}
	assert.Equal(t, []string{"a", "c", "rest"}, CollectIdentifiers(p))
}

func TestCollectIdentifiersArrayPatternWithHoles(t *testing.T) {
	p := &jsast.ArrayPattern{
		Elements: []jsast.Node{&jsast.Identifier{Name: "a"}, nil, &jsast.Identifier{Name: "b"}},
		Rest:     &jsast.Identifier{Name: "rest"},
	}
	assert.Equal(t, []string{"a", "b", "rest"}, CollectIdentifiers(p))
}

func TestCollectIdentifiersDefaultSkipsRHS(t *testing.T) {
	p := &jsast.AssignmentPattern{
		Left:    &jsast.Identifier{Name: "x"},
		Default: &jsast.Identifier{Name: "shouldNotAppear"},
	}
	assert.Equal(t, []string{"x"}, CollectIdentifiers(p))
}

func TestCollectIdentifiersPanicsOnBadShape(t *testing.T) {
	assert.Panics(t, func() {
		CollectIdentifiers(&jsast.Literal{})
	})
}
