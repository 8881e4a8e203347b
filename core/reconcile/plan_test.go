package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Replace(ctx context.Context, catalog []item) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

func TestApplyPlan(t *testing.T) {
	plan := &Plan[item]{Mode: ModeMerge, Catalog: []item{{ID: 1, Barcode: "A"}}}

	t.Run("NotConfirmed", func(t *testing.T) {
		sink := new(mockSink)
		applied, err := ApplyPlan[item](context.Background(), sink, plan, ApplyOptions{})
		assert.NoError(t, err)
		assert.False(t, applied)
		sink.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("DryRun", func(t *testing.T) {
		sink := new(mockSink)
		applied, err := ApplyPlan[item](context.Background(), sink, plan, ApplyOptions{DryRun: true, Confirmed: true})
		assert.NoError(t, err)
		assert.False(t, applied)
		sink.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("Confirmed", func(t *testing.T) {
		sink := new(mockSink)
		sink.On("Replace", mock.Anything, plan.Catalog).Return(nil)

		applied, err := ApplyPlan[item](context.Background(), sink, plan, ApplyOptions{Confirmed: true})
		assert.NoError(t, err)
		assert.True(t, applied)
		sink.AssertExpectations(t)
	})

	t.Run("SinkError", func(t *testing.T) {
		sink := new(mockSink)
		sink.On("Replace", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		applied, err := ApplyPlan[item](context.Background(), sink, plan, ApplyOptions{Confirmed: true})
		assert.ErrorContains(t, err, "disk full")
		assert.False(t, applied)
	})
}

func TestReconcileAndApply(t *testing.T) {
	sink := new(mockSink)
	sink.On("Replace", mock.Anything, []item{{ID: 1, Barcode: "A", Price: 3}}).Return(nil)

	plan, applied, err := ReconcileAndApply[item](
		context.Background(),
		itemAdapter{},
		sink,
		[]item{{ID: 1, Barcode: "A"}},
		[]item{{Barcode: "A", Price: 3}},
		Options{},
		ApplyOptions{Confirmed: true},
	)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, plan.Summary.Updated)
	sink.AssertExpectations(t)
}
