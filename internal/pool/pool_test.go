package pool

import (
	"testing"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmissionPool(t *testing.T) {
	p := NewSubmissionPool()
	require.NotNil(t, p)

	got := p.Get()
	require.NotNil(t, got)
	assert.Empty(t, got.URL)
}

func TestPoolGet_EmptyAllocates(t *testing.T) {
	allocs := 0
	p := New(4, func() *model.Submission {
		allocs++
		return &model.Submission{}
	})

	require.NotNil(t, p.Get())
	require.NotNil(t, p.Get())
	assert.Equal(t, 2, allocs)
}

func TestPoolPutAndGet(t *testing.T) {
	p := NewSubmissionPool()

	sub := &model.Submission{URL: "https://youtube.com/watch?v=abc", Format: model.FormatMP4}
	p.Put(sub)

	got := p.Get()
	require.NotNil(t, got)
	assert.Same(t, sub, got)
	assert.Empty(t, got.URL)
	assert.Empty(t, got.Format)
}

func TestPoolPut_FullPoolDropsObject(t *testing.T) {
	allocs := 0
	p := New(1, func() *model.Submission {
		allocs++
		return &model.Submission{}
	})

	first := &model.Submission{URL: "a"}
	p.Put(first)
	p.Put(&model.Submission{URL: "b"})

	assert.Same(t, first, p.Get())

	// The dropped object is gone: the next Get has to allocate.
	p.Get()
	assert.Equal(t, 1, allocs)
}
