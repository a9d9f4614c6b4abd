package fluent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_SuccessAndFail(t *testing.T) {
	t.Parallel()

	ok := Success("value")
	assert.True(t, ok.IsSuccess())
	assert.NoError(t, ok.Err())
	assert.Equal(t, "value", ok.Result())
	assert.Equal(t, "value", ok.OrElse("fallback"))

	err := errors.New("bad")
	failed := Fail[string](err)
	assert.False(t, failed.IsSuccess())
	assert.Same(t, err, failed.Err())
	assert.Equal(t, "fallback", failed.OrElse("fallback"))

	assert.NotEqual(t, ok.ID(), failed.ID())
}

func TestExtract_Failures(t *testing.T) {
	t.Parallel()

	b := Build[int]().Unbox("text", func(args ...any) func(int) any {
		return func(a int) any { return "n" }
	})
	inst := b.Value(1)

	missing := Extract[string](inst, "nope")
	assert.ErrorIs(t, missing.Err(), ErrMethodNotFound)

	wrongType := Extract[int](inst, "text")
	assert.ErrorIs(t, wrongType.Err(), ErrResultType)
	assert.Equal(t, -1, wrongType.OrElse(-1))

	text := Extract[string](inst, "text")
	assert.Equal(t, "n", text.Result())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("single")
	assert.Equal(t, []error{single}, GetErrors(single))

	a, b := errors.New("a"), errors.New("b")
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		ptr   *Instance
		m     map[string]int
		slice []int
		fn    func()
		err   error
	)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ptr))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(slice))
	assert.True(t, IsNil(fn))
	assert.True(t, IsNil(err))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(&Instance{}))
	assert.False(t, IsNil([]int{}))
}
