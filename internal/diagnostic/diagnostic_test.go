package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

func TestFailPanicsWithTransformError(t *testing.T) {
	pos := jsast.Position{Line: 3, Column: 4}

	var caught *TransformError
	func() {
		defer func() {
			if r := recover(); r != nil {
				caught = r.(*TransformError)
			}
		}()
		Fail(pos, "ClassDeclaration", "unsupported construct")
	}()

	assert.NotNil(t, caught)
	assert.Equal(t, pos, caught.Pos)
	assert.Equal(t, "ClassDeclaration", caught.Construct)
	assert.Contains(t, caught.Error(), "unsupported construct")
}

func TestRecoverCapturesTransformError(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		Fail(jsast.Position{Line: 1, Column: 0}, "WithStatement", "not supported")
	}()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "WithStatement")
}

func TestRecoverReraisesOtherPanics(t *testing.T) {
	assert.Panics(t, func() {
		var err error
		defer Recover(&err)
		panic("not a transform error")
	})
}
