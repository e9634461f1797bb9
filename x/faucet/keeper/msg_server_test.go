package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veris-chain/veris/testutil/keeper"
	"github.com/veris-chain/veris/x/faucet/keeper"
	"github.com/veris-chain/veris/x/faucet/types"
)

// eventAttributes returns the attributes of the first emitted event of the
// given type, or nil when none was emitted.
func eventAttributes(ctx sdk.Context, eventType string) map[string]string {
	for _, event := range ctx.EventManager().Events() {
		if event.Type != eventType {
			continue
		}
		attrs := make(map[string]string, len(event.Attributes))
		for _, attr := range event.Attributes {
			attrs[attr.Key] = attr.Value
		}
		return attrs
	}
	return nil
}

// TestMsgRequestTokens tests the handler response and its event
func TestMsgRequestTokens(t *testing.T) {
	k, _, ctx := keepertest.FaucetKeeper(t)
	ms := keeper.NewMsgServerImpl(k)
	requester := sdk.AccAddress([]byte("faucet_requester____")).String()

	resp, err := ms.RequestTokens(ctx, types.NewMsgRequestTokens(requester))
	require.NoError(t, err)
	require.Equal(t, types.DefaultAmountPerRequest, resp.Amount)
	require.Equal(t, types.DefaultDenom, resp.Denom)

	attrs := eventAttributes(ctx, types.EventTypeTokensRequested)
	require.NotNil(t, attrs)
	require.Equal(t, requester, attrs[types.AttributeKeyRequester])
	require.Equal(t, "10000000", attrs[types.AttributeKeyAmount])
	require.Equal(t, types.DefaultDenom, attrs[types.AttributeKeyDenom])

	_, err = ms.RequestTokens(ctx, types.NewMsgRequestTokens(requester))
	require.ErrorIs(t, err, types.ErrCooldownActive)
}

// TestMsgUpdateParams tests module-authority gating on parameter changes
func TestMsgUpdateParams(t *testing.T) {
	k, _, ctx := keepertest.FaucetKeeper(t)
	ms := keeper.NewMsgServerImpl(k)

	params := types.DefaultParams()
	params.AmountPerRequest = 1_000_000

	stranger := sdk.AccAddress([]byte("params_stranger_____")).String()
	_, err := ms.UpdateParams(ctx, types.NewMsgUpdateParams(stranger, params))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.UpdateParams(ctx, types.NewMsgUpdateParams(k.GetAuthority(), params))
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), k.GetParams(ctx).AmountPerRequest)

	attrs := eventAttributes(ctx, types.EventTypeParamsUpdated)
	require.NotNil(t, attrs)
	require.Equal(t, k.GetAuthority(), attrs[types.AttributeKeyAuthority])
}

// TestMsgUpdateParams_RejectsInvalid tests that a bad parameter set never
// lands in state
func TestMsgUpdateParams_RejectsInvalid(t *testing.T) {
	k, _, ctx := keepertest.FaucetKeeper(t)
	ms := keeper.NewMsgServerImpl(k)

	params := types.DefaultParams()
	params.AmountPerRequest = 0

	_, err := ms.UpdateParams(ctx, types.NewMsgUpdateParams(k.GetAuthority(), params))
	require.Error(t, err)
	require.Equal(t, types.DefaultAmountPerRequest, k.GetParams(ctx).AmountPerRequest)
}
