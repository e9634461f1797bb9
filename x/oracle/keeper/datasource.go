package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// GetDataSource retrieves a data source by content id
func (k Keeper) GetDataSource(ctx sdk.Context, id []byte) (types.DataSource, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetDataSourceKey(id))
	if bz == nil {
		return types.DataSource{}, types.ErrDataSourceNotFound.Wrapf("id %x", id)
	}

	var source types.DataSource
	k.mustUnmarshal(bz, &source)
	return source, nil
}

// SetDataSource stores a data source record
func (k Keeper) SetDataSource(ctx sdk.Context, source types.DataSource) {
	store := k.getStore(ctx)
	store.Set(types.GetDataSourceKey(source.ID), k.mustMarshal(&source))
}

// HasDataSource reports whether a data source with the given id exists
func (k Keeper) HasDataSource(ctx sdk.Context, id []byte) bool {
	return k.getStore(ctx).Has(types.GetDataSourceKey(id))
}

// IterateDataSources walks all data sources until cb returns true
func (k Keeper) IterateDataSources(ctx sdk.Context, cb func(types.DataSource) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.DataSourceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var source types.DataSource
		k.mustUnmarshal(iterator.Value(), &source)
		if cb(source) {
			break
		}
	}
}

// CreateDataSource verifies the owner's signature over the registration
// digest and stores the data source under its content id.
func (k Keeper) CreateDataSource(
	ctx sdk.Context,
	creator string,
	kind types.DataSourceKind,
	name, source string,
	ownerEth, signature []byte,
) ([]byte, error) {
	if err := VerifyDataSourceSignature(kind, source, ownerEth, name, signature); err != nil {
		return nil, err
	}

	id := ComputeDataSourceID(kind, source, ownerEth, name)
	if k.HasDataSource(ctx, id) {
		return nil, types.ErrDataSourceExists.Wrapf("id %x", id)
	}

	k.SetDataSource(ctx, types.DataSource{
		ID:        id,
		Owner:     creator,
		OwnerEth:  ownerEth,
		Kind:      kind,
		Name:      name,
		Source:    source,
		CreatedAt: ctx.BlockTime().Unix(),
	})

	if k.metrics != nil {
		k.metrics.DataSourcesCreated.With(map[string]string{"kind": kind.String()}).Inc()
	}

	k.Logger(ctx).Info("data source created", "id", fmt.Sprintf("%x", id), "kind", kind.String(), "name", name)
	return id, nil
}

// ResolveDataSourceForFeed returns the content id a feed will reference,
// creating the data source on first use. The owner signature is verified for
// every feed creation, not just the one that first materializes the source.
// Private sources additionally require an active permit from the owner to the
// feed authority.
func (k Keeper) ResolveDataSourceForFeed(
	ctx sdk.Context,
	feedAuthority string,
	kind types.DataSourceKind,
	name, source string,
	ownerEth, signature []byte,
) ([]byte, error) {
	if err := VerifyDataSourceSignature(kind, source, ownerEth, name, signature); err != nil {
		return nil, err
	}

	if kind == types.DataSourceKindPrivate {
		if !k.HasEthLink(ctx, ownerEth, feedAuthority) {
			return nil, types.ErrInvalidDataSource.Wrapf("no permit from owner %x to %s", ownerEth, feedAuthority)
		}
	}

	id := ComputeDataSourceID(kind, source, ownerEth, name)
	if !k.HasDataSource(ctx, id) {
		k.SetDataSource(ctx, types.DataSource{
			ID:        id,
			Owner:     feedAuthority,
			OwnerEth:  ownerEth,
			Kind:      kind,
			Name:      name,
			Source:    source,
			CreatedAt: ctx.BlockTime().Unix(),
		})
		if k.metrics != nil {
			k.metrics.DataSourcesCreated.With(map[string]string{"kind": kind.String()}).Inc()
		}
		k.Logger(ctx).Info("data source created for feed", "id", fmt.Sprintf("%x", id), "authority", feedAuthority)
	}
	return id, nil
}

// GetEthLink retrieves the permit record for an (owner, grantee) pair
func (k Keeper) GetEthLink(ctx sdk.Context, ownerEth []byte, grantee string) (types.EthLink, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetEthLinkKey(ownerEth, grantee))
	if bz == nil {
		return types.EthLink{}, types.ErrEthLinkNotFound.Wrapf("owner %x grantee %s", ownerEth, grantee)
	}

	var link types.EthLink
	k.mustUnmarshal(bz, &link)
	return link, nil
}

// SetEthLink stores a permit record
func (k Keeper) SetEthLink(ctx sdk.Context, link types.EthLink) {
	store := k.getStore(ctx)
	store.Set(types.GetEthLinkKey(link.OwnerEth, link.Grantee), k.mustMarshal(&link))
}

// HasEthLink reports whether an (owner, grantee) permit exists
func (k Keeper) HasEthLink(ctx sdk.Context, ownerEth []byte, grantee string) bool {
	return k.getStore(ctx).Has(types.GetEthLinkKey(ownerEth, grantee))
}

// IterateEthLinks walks all permit records until cb returns true
func (k Keeper) IterateEthLinks(ctx sdk.Context, cb func(types.EthLink) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.EthLinkKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var link types.EthLink
		k.mustUnmarshal(iterator.Value(), &link)
		if cb(link) {
			break
		}
	}
}

// CreatePermit verifies the owner's permit signature and records the grant.
func (k Keeper) CreatePermit(ctx sdk.Context, ownerEth []byte, grantee string, signature []byte) error {
	if err := VerifyPermitSignature(ownerEth, grantee, signature); err != nil {
		return err
	}

	if k.HasEthLink(ctx, ownerEth, grantee) {
		return types.ErrEthLinkExists.Wrapf("owner %x grantee %s", ownerEth, grantee)
	}

	k.SetEthLink(ctx, types.EthLink{
		OwnerEth:  ownerEth,
		Grantee:   grantee,
		CreatedAt: ctx.BlockTime().Unix(),
	})

	if k.metrics != nil {
		k.metrics.PermitsActive.Inc()
	}

	k.Logger(ctx).Info("permit created", "owner", fmt.Sprintf("%x", ownerEth), "grantee", grantee)
	return nil
}

// RevokePermit verifies the owner's revoke signature and deletes the grant.
func (k Keeper) RevokePermit(ctx sdk.Context, ownerEth []byte, grantee string, signature []byte) error {
	if err := VerifyRevokePermitSignature(ownerEth, grantee, signature); err != nil {
		return err
	}

	if !k.HasEthLink(ctx, ownerEth, grantee) {
		return types.ErrEthLinkNotFound.Wrapf("owner %x grantee %s", ownerEth, grantee)
	}

	k.getStore(ctx).Delete(types.GetEthLinkKey(ownerEth, grantee))

	if k.metrics != nil {
		k.metrics.PermitsActive.Dec()
	}

	k.Logger(ctx).Info("permit revoked", "owner", fmt.Sprintf("%x", ownerEth), "grantee", grantee)
	return nil
}
