package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	_, ok := kv.Load(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, kv.Save(ctx, "k", map[string]int{"n": 1}))
	raw, ok := kv.Load(ctx, "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"n":1}`, string(raw))

	require.NoError(t, kv.Remove(ctx, "k"))
	_, ok = kv.Load(ctx, "k")
	assert.False(t, ok)
}

func TestKVCorruptValueTreatedAsMissing(t *testing.T) {
	kv := NewKV()
	kv.PutRaw("k", []byte("{not json"))

	_, ok := kv.Load(context.Background(), "k")
	assert.False(t, ok)
}
