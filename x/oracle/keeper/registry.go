package keeper

import (
	"bytes"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// GetNodeRegistry retrieves the singleton node registry
func (k Keeper) GetNodeRegistry(ctx sdk.Context) (types.NodeRegistry, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.NodeRegistryKey)
	if bz == nil {
		return types.NodeRegistry{}, types.ErrRegistryNotFound
	}

	var registry types.NodeRegistry
	k.mustUnmarshal(bz, &registry)
	return registry, nil
}

// SetNodeRegistry stores the singleton node registry
func (k Keeper) SetNodeRegistry(ctx sdk.Context, registry types.NodeRegistry) {
	store := k.getStore(ctx)
	store.Set(types.NodeRegistryKey, k.mustMarshal(&registry))
}

// InitializeRegistry creates the node registry with the given managing
// authority. It can only happen once.
func (k Keeper) InitializeRegistry(ctx sdk.Context, authority string) error {
	if k.getStore(ctx).Has(types.NodeRegistryKey) {
		return types.ErrRegistryExists
	}

	k.SetNodeRegistry(ctx, types.NodeRegistry{
		Authority: authority,
		Nodes:     [][]byte{},
	})

	k.Logger(ctx).Info("node registry initialized", "authority", authority)
	return nil
}

// AddNode registers a node identity and activates its account. Returns the
// registry size after the addition.
func (k Keeper) AddNode(ctx sdk.Context, identity []byte) (uint64, error) {
	registry, err := k.GetNodeRegistry(ctx)
	if err != nil {
		return 0, err
	}

	if len(registry.Nodes) >= types.MaxNodes {
		return 0, types.ErrMaxNodesReached.Wrapf("registry holds %d nodes", len(registry.Nodes))
	}
	if registry.Contains(identity) {
		return 0, types.ErrNodeAlreadyAdded.Wrapf("identity %x", identity)
	}

	registry.Nodes = append(registry.Nodes, identity)
	k.SetNodeRegistry(ctx, registry)

	if k.metrics != nil {
		k.metrics.RegistrySize.Set(float64(len(registry.Nodes)))
	}

	now := ctx.BlockTime().Unix()
	account, err := k.GetNodeAccount(ctx, identity)
	if err != nil {
		account = types.NodeAccount{
			Identity:  identity,
			Authority: registry.Authority,
			CreatedAt: now,
		}
	}
	account.Active = true
	k.SetNodeAccount(ctx, account)

	k.Logger(ctx).Info("node added", "identity", fmt.Sprintf("%x", identity), "nodes", len(registry.Nodes))
	return uint64(len(registry.Nodes)), nil
}

// RemoveNode deregisters a node identity and deactivates its account. The
// registry slot is filled by swapping in the last entry. Returns the registry
// size after the removal.
func (k Keeper) RemoveNode(ctx sdk.Context, identity []byte) (uint64, error) {
	registry, err := k.GetNodeRegistry(ctx)
	if err != nil {
		return 0, err
	}

	idx := -1
	for i, node := range registry.Nodes {
		if bytes.Equal(node, identity) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, types.ErrNodeNotFound.Wrapf("identity %x", identity)
	}

	last := len(registry.Nodes) - 1
	registry.Nodes[idx] = registry.Nodes[last]
	registry.Nodes = registry.Nodes[:last]
	k.SetNodeRegistry(ctx, registry)

	if k.metrics != nil {
		k.metrics.RegistrySize.Set(float64(len(registry.Nodes)))
	}

	if account, err := k.GetNodeAccount(ctx, identity); err == nil {
		account.Active = false
		k.SetNodeAccount(ctx, account)
	}

	k.Logger(ctx).Info("node removed", "identity", fmt.Sprintf("%x", identity), "nodes", len(registry.Nodes))
	return uint64(len(registry.Nodes)), nil
}

// GetNodeAccount retrieves the bookkeeping record for a node identity
func (k Keeper) GetNodeAccount(ctx sdk.Context, identity []byte) (types.NodeAccount, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetNodeAccountKey(identity))
	if bz == nil {
		return types.NodeAccount{}, types.ErrNodeNotFound.Wrapf("no account for identity %x", identity)
	}

	var account types.NodeAccount
	k.mustUnmarshal(bz, &account)
	return account, nil
}

// SetNodeAccount stores a node bookkeeping record
func (k Keeper) SetNodeAccount(ctx sdk.Context, account types.NodeAccount) {
	store := k.getStore(ctx)
	store.Set(types.GetNodeAccountKey(account.Identity), k.mustMarshal(&account))
}

// IterateNodeAccounts walks all node accounts until cb returns true
func (k Keeper) IterateNodeAccounts(ctx sdk.Context, cb func(types.NodeAccount) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.NodeAccountKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var account types.NodeAccount
		k.mustUnmarshal(iterator.Value(), &account)
		if cb(account) {
			break
		}
	}
}

// StampNodeActivity records when a node's attestation was last accepted into
// a published answer. Identities without an account record are ignored.
func (k Keeper) StampNodeActivity(ctx sdk.Context, identity []byte, now int64) {
	account, err := k.GetNodeAccount(ctx, identity)
	if err != nil {
		return
	}
	account.LastActive = now
	k.SetNodeAccount(ctx, account)
}
