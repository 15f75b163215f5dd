package optypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	for _, name := range []string{"ReduceLogSumExp", "reducelogsumexp", "reduce_log_sum_exp"} {
		op, err := FromName(name)
		require.NoError(t, err, "name=%q", name)
		assert.Equal(t, ReduceLogSumExp, op)
	}
	_, err := FromName("Conv")
	require.Error(t, err)
	_, err = FromName("Last")
	require.Error(t, err)
}

func TestOperationSets(t *testing.T) {
	for op := Invalid + 1; op < Last; op++ {
		assert.True(t, ReduceOperations.Has(op) != ArgReduceOperations.Has(op),
			"%s must be in exactly one of the operation sets", op)
	}
	assert.Len(t, ReduceOperations, 10)
	assert.Equal(t, "arg_min", ArgMin.SnakeCase())
}
