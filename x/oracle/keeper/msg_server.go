package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// requireRegistryAuthority checks that the signer manages the node registry.
func (ms msgServer) requireRegistryAuthority(ctx sdk.Context, signer string) error {
	registry, err := ms.GetNodeRegistry(ctx)
	if err != nil {
		return err
	}
	if signer != registry.Authority {
		return types.ErrUnauthorized.Wrapf("signer %s, registry authority %s", signer, registry.Authority)
	}
	return nil
}

// InitializeRegistry creates the singleton node registry with the signer as
// its managing authority
func (ms msgServer) InitializeRegistry(goCtx context.Context, msg *types.MsgInitializeRegistry) (*types.MsgInitializeRegistryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.InitializeRegistry(ctx, msg.Authority); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegistryInitialized,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	return &types.MsgInitializeRegistryResponse{}, nil
}

// AddNode registers a reporting node identity
func (ms msgServer) AddNode(goCtx context.Context, msg *types.MsgAddNode) (*types.MsgAddNodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.requireRegistryAuthority(ctx, msg.Authority); err != nil {
		return nil, err
	}

	nodeCount, err := ms.Keeper.AddNode(ctx, msg.Identity)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNodeAdded,
			sdk.NewAttribute(types.AttributeKeyIdentity, fmt.Sprintf("%x", msg.Identity)),
			sdk.NewAttribute(types.AttributeKeyNodeCount, fmt.Sprintf("%d", nodeCount)),
		),
	)

	return &types.MsgAddNodeResponse{NodeCount: nodeCount}, nil
}

// RemoveNode deregisters a reporting node identity
func (ms msgServer) RemoveNode(goCtx context.Context, msg *types.MsgRemoveNode) (*types.MsgRemoveNodeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.requireRegistryAuthority(ctx, msg.Authority); err != nil {
		return nil, err
	}

	nodeCount, err := ms.Keeper.RemoveNode(ctx, msg.Identity)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNodeRemoved,
			sdk.NewAttribute(types.AttributeKeyIdentity, fmt.Sprintf("%x", msg.Identity)),
			sdk.NewAttribute(types.AttributeKeyNodeCount, fmt.Sprintf("%d", nodeCount)),
		),
	)

	return &types.MsgRemoveNodeResponse{NodeCount: nodeCount}, nil
}

// CreateDataSource registers a data source after verifying the owner's
// signature over its registration digest
func (ms msgServer) CreateDataSource(goCtx context.Context, msg *types.MsgCreateDataSource) (*types.MsgCreateDataSourceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	id, err := ms.Keeper.CreateDataSource(ctx, msg.Creator, msg.Kind, msg.Name, msg.Source, msg.OwnerEth, msg.Signature)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDataSourceCreated,
			sdk.NewAttribute(types.AttributeKeyDataSourceID, fmt.Sprintf("%x", id)),
			sdk.NewAttribute(types.AttributeKeyOwner, fmt.Sprintf("%x", msg.OwnerEth)),
		),
	)

	return &types.MsgCreateDataSourceResponse{Id: id}, nil
}

// CreatePermit records an owner's grant of private data source access
func (ms msgServer) CreatePermit(goCtx context.Context, msg *types.MsgCreatePermit) (*types.MsgCreatePermitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.CreatePermit(ctx, msg.OwnerEth, msg.Grantee, msg.Signature); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLinkCreated,
			sdk.NewAttribute(types.AttributeKeyOwner, fmt.Sprintf("%x", msg.OwnerEth)),
			sdk.NewAttribute(types.AttributeKeyGrantee, msg.Grantee),
		),
	)

	return &types.MsgCreatePermitResponse{}, nil
}

// RevokePermit removes an owner's grant of private data source access
func (ms msgServer) RevokePermit(goCtx context.Context, msg *types.MsgRevokePermit) (*types.MsgRevokePermitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.RevokePermit(ctx, msg.OwnerEth, msg.Grantee, msg.Signature); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLinkRevoked,
			sdk.NewAttribute(types.AttributeKeyOwner, fmt.Sprintf("%x", msg.OwnerEth)),
			sdk.NewAttribute(types.AttributeKeyGrantee, msg.Grantee),
		),
	)

	return &types.MsgRevokePermitResponse{}, nil
}

// CreateFeed creates a feed with a funded subscription
func (ms msgServer) CreateFeed(goCtx context.Context, msg *types.MsgCreateFeed) (*types.MsgCreateFeedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	result, err := ms.Keeper.CreateFeed(ctx, msg)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedCreated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.Name),
			sdk.NewAttribute(types.AttributeKeyFeedType, msg.FeedType.String()),
			sdk.NewAttribute(types.AttributeKeyDataSourceID, fmt.Sprintf("%x", result.DataSourceID)),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", result.PricePerSecondScaled)),
			sdk.NewAttribute(types.AttributeKeyDueTime, fmt.Sprintf("%d", result.SubscriptionDueTime)),
		),
	)

	return &types.MsgCreateFeedResponse{
		DataSourceId:         result.DataSourceID,
		PricePerSecondScaled: result.PricePerSecondScaled,
		TotalCharged:         result.TotalCharged,
		SubscriptionDueTime:  result.SubscriptionDueTime,
	}, nil
}

// PublishAnswer submits an attested report to a feed
func (ms msgServer) PublishAnswer(goCtx context.Context, msg *types.MsgPublishAnswer) (*types.MsgPublishAnswerResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	result, err := ms.Keeper.PublishAnswer(ctx, msg)
	if err != nil {
		if ms.metrics != nil {
			ms.metrics.PublishRejections.With(map[string]string{"reason": rejectionReason(err)}).Inc()
		}
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAnswerPublished,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.FeedAuthority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.FeedName),
			sdk.NewAttribute(types.AttributeKeyValue, fmt.Sprintf("%x", msg.Value)),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", msg.Timestamp)),
			sdk.NewAttribute(types.AttributeKeySigners, fmt.Sprintf("%d", result.SignerCount)),
			sdk.NewAttribute(types.AttributeKeyFee, fmt.Sprintf("%d", result.FeeCharged)),
			sdk.NewAttribute(types.AttributeKeySubmitter, msg.Submitter),
		),
	)

	return &types.MsgPublishAnswerResponse{
		SignerCount: result.SignerCount,
		FeeCharged:  result.FeeCharged,
	}, nil
}

// ExtendSubscription lengthens a feed's paid subscription window
func (ms msgServer) ExtendSubscription(goCtx context.Context, msg *types.MsgExtendSubscription) (*types.MsgExtendSubscriptionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	due, charged, err := ms.Keeper.ExtendSubscription(ctx, msg)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubscriptionExtended,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.FeedName),
			sdk.NewAttribute(types.AttributeKeyDueTime, fmt.Sprintf("%d", due)),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", charged)),
		),
	)

	return &types.MsgExtendSubscriptionResponse{
		SubscriptionDueTime: due,
		TotalCharged:        charged,
	}, nil
}

// UpdateFeedConfig reconfigures a personal feed and reprices its
// subscription
func (ms msgServer) UpdateFeedConfig(goCtx context.Context, msg *types.MsgUpdateFeedConfig) (*types.MsgUpdateFeedConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	price, due, err := ms.Keeper.UpdateFeedConfig(ctx, msg)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedConfigUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.FeedName),
			sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
			sdk.NewAttribute(types.AttributeKeyDueTime, fmt.Sprintf("%d", due)),
		),
	)

	return &types.MsgUpdateFeedConfigResponse{
		PricePerSecondScaled: price,
		SubscriptionDueTime:  due,
	}, nil
}

// TopUpFeed adds escrowed balance to a feed
func (ms msgServer) TopUpFeed(goCtx context.Context, msg *types.MsgTopUpFeed) (*types.MsgTopUpFeedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	balance, err := ms.Keeper.TopUpFeed(ctx, msg)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedToppedUp,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.FeedName),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", msg.Amount)),
		),
	)

	return &types.MsgTopUpFeedResponse{Balance: balance}, nil
}

// FundSubscription funds the caller's prepaid flat-fee subscription on a
// feed
func (ms msgServer) FundSubscription(goCtx context.Context, msg *types.MsgFundSubscription) (*types.MsgFundSubscriptionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	balance, err := ms.Keeper.FundSubscription(ctx, msg)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubscriptionFunded,
			sdk.NewAttribute(types.AttributeKeyConsumer, msg.Consumer),
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.FeedAuthority),
			sdk.NewAttribute(types.AttributeKeyFeedName, msg.FeedName),
			sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", msg.Amount)),
		),
	)

	return &types.MsgFundSubscriptionResponse{Balance: balance}, nil
}

// UpdateParams updates the module parameters; only the module authority may
// do so
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if msg.Authority != ms.authority {
		return nil, types.ErrUnauthorized.Wrapf("signer %s, module authority %s", msg.Authority, ms.authority)
	}

	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}

// rejectionReason buckets publish failures for the rejection counter.
func rejectionReason(err error) string {
	switch {
	case errors.IsOf(err, types.ErrFeedNotFound):
		return "feed_not_found"
	case errors.IsOf(err, types.ErrSubscriptionExpired):
		return "expired"
	case errors.IsOf(err, types.ErrPastTimestamp):
		return "past_timestamp"
	case errors.IsOf(err, types.ErrFutureTimestamp):
		return "future_timestamp"
	case errors.IsOf(err, types.ErrZeroValue):
		return "zero_value"
	case errors.IsOf(err, types.ErrNotEnoughSignatures):
		return "threshold"
	case errors.IsOf(err, types.ErrInsufficientBalance, types.ErrInsufficientPriorityFeeBudget, types.ErrSubscriptionNotFound):
		return "fees"
	default:
		return "other"
	}
}
