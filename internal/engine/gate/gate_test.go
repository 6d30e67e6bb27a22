package gate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/romdeps/internal/adapters/approvals"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports/mocks"
	"go.trai.ch/romdeps/internal/engine/gate"
	"go.uber.org/mock/gomock"
)

func openStore(t *testing.T) *approvals.Store {
	t.Helper()
	s, err := approvals.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestGate_DecideCollectsPending(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Set("liba.so", domain.DecisionApproved))
	require.NoError(t, store.Set("libbad.so", domain.DecisionRejected))

	g := gate.New(store)

	assert.Equal(t, domain.DecisionApproved, g.Decide("liba.so"))
	assert.Equal(t, domain.DecisionRejected, g.Decide("libbad.so"))
	assert.Equal(t, domain.DecisionUndecided, g.Decide("libnew.so"))
	assert.Equal(t, domain.DecisionUndecided, g.Decide("libnew.so"))
	assert.Equal(t, domain.DecisionUndecided, g.Decide("libother.so"))

	assert.Equal(t, []string{"libnew.so", "libother.so"}, g.Pending())

	g.ResetPending()
	assert.Empty(t, g.Pending())
	assert.Equal(t, domain.DecisionUndecided, store.Get("libnew.so"), "reset keeps state untouched")
}

func TestGate_ApplyPersists(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Set("libold.so", domain.DecisionRejected))
	g := gate.New(store)

	out, err := g.Apply(map[string]domain.Decision{
		"liba.so":   domain.DecisionApproved,
		"libb.so":   domain.DecisionRejected,
		"libc.so":   domain.DecisionUndecided,
		"libold.so": domain.DecisionApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"liba.so"}, out.Approved)
	assert.Equal(t, []string{"libb.so"}, out.Rejected)
	assert.Equal(t, 2, out.Applied())

	assert.Equal(t, domain.DecisionApproved, store.Get("liba.so"))
	assert.Equal(t, domain.DecisionRejected, store.Get("libb.so"))
	assert.Equal(t, domain.DecisionUndecided, store.Get("libc.so"))
	assert.Equal(t, domain.DecisionRejected, store.Get("libold.so"), "rejection is permanent")
}

func TestGate_UnpersistableNamesHoldForSession(t *testing.T) {
	store := openStore(t)
	g := gate.New(store)

	odd := "lib odd.so"
	assert.Equal(t, domain.DecisionUndecided, g.Decide(odd))

	out, err := g.Apply(map[string]domain.Decision{odd: domain.DecisionApproved})
	require.NoError(t, err)
	assert.Equal(t, []string{odd}, out.Unpersisted)
	assert.Equal(t, []string{odd}, out.Approved)

	assert.Equal(t, domain.DecisionApproved, g.Decide(odd))
	assert.Empty(t, store.Approved())
	assert.Equal(t, []string{odd}, g.SessionApproved())
}

func TestGate_SessionApprovedExcludesRejections(t *testing.T) {
	g := gate.New(openStore(t))

	_, err := g.Apply(map[string]domain.Decision{
		"lib b.so": domain.DecisionApproved,
		"lib a.so": domain.DecisionApproved,
		"lib c.so": domain.DecisionRejected,
		"libd.so":  domain.DecisionApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lib a.so", "lib b.so"}, g.SessionApproved())
}

func TestGate_ApplyStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockApprovalStore(ctrl)
	boom := errors.New("disk full")

	store.EXPECT().Get("liba.so").Return(domain.DecisionUndecided)
	store.EXPECT().Set("liba.so", domain.DecisionApproved).Return(boom)

	_, err := gate.New(store).Apply(map[string]domain.Decision{"liba.so": domain.DecisionApproved})
	require.ErrorIs(t, err, boom)
}

func TestGate_Settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDecisionProvider(ctrl)
	store := openStore(t)
	g := gate.New(store)

	g.Decide("liba.so")
	g.Decide("libb.so")

	provider.EXPECT().
		Decide(gomock.Any(), []string{"liba.so", "libb.so"}).
		Return(map[string]domain.Decision{"liba.so": domain.DecisionApproved}, nil)

	out, err := g.Settle(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Applied())
	assert.Empty(t, g.Pending())
	assert.Equal(t, domain.DecisionApproved, store.Get("liba.so"))
	assert.Equal(t, domain.DecisionUndecided, store.Get("libb.so"))
}

func TestGate_SettleNothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDecisionProvider(ctrl)

	out, err := gate.New(openStore(t)).Settle(context.Background(), provider)
	require.NoError(t, err)
	assert.Zero(t, out.Applied())
}

func TestGate_SettleProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockDecisionProvider(ctrl)
	g := gate.New(openStore(t))
	g.Decide("liba.so")

	provider.EXPECT().Decide(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDecisionAborted)

	_, err := g.Settle(context.Background(), provider)
	require.ErrorIs(t, err, domain.ErrDecisionAborted)
	assert.Equal(t, []string{"liba.so"}, g.Pending(), "aborted rounds keep the pending set")
}

func TestGate_LookupDoesNotCollect(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Set("libbad.so", domain.DecisionRejected))
	g := gate.New(store)

	assert.Equal(t, domain.DecisionRejected, g.Lookup("libbad.so"))
	assert.Equal(t, domain.DecisionUndecided, g.Lookup("libnew.so"))
	assert.Empty(t, g.Pending())
}
