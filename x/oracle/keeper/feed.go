package keeper

import (
	"math"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// Per-answer ring write cost.
const gasPerHistoryWrite = 500

// GetFeed retrieves a feed by its (authority, name) key
func (k Keeper) GetFeed(ctx sdk.Context, authority, name string) (types.Feed, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetFeedKey(authority, name))
	if bz == nil {
		return types.Feed{}, types.ErrFeedNotFound.Wrapf("%s/%s", authority, name)
	}

	var feed types.Feed
	k.mustUnmarshal(bz, &feed)
	return feed, nil
}

// SetFeed stores a feed record
func (k Keeper) SetFeed(ctx sdk.Context, feed types.Feed) {
	store := k.getStore(ctx)
	store.Set(feed.Key(), k.mustMarshal(&feed))
}

// HasFeed reports whether a feed exists under the (authority, name) key
func (k Keeper) HasFeed(ctx sdk.Context, authority, name string) bool {
	return k.getStore(ctx).Has(types.GetFeedKey(authority, name))
}

// IterateFeeds walks all feeds until cb returns true
func (k Keeper) IterateFeeds(ctx sdk.Context, cb func(types.Feed) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FeedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var feed types.Feed
		k.mustUnmarshal(iterator.Value(), &feed)
		if cb(feed) {
			break
		}
	}
}

// GetSubscription retrieves a per-consumer subscription record
func (k Keeper) GetSubscription(ctx sdk.Context, consumer, feedAuthority, feedName string) (types.Subscription, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetSubscriptionKey(consumer, feedAuthority, feedName))
	if bz == nil {
		return types.Subscription{}, types.ErrSubscriptionNotFound.Wrapf("%s on %s/%s", consumer, feedAuthority, feedName)
	}

	var sub types.Subscription
	k.mustUnmarshal(bz, &sub)
	return sub, nil
}

// SetSubscription stores a per-consumer subscription record
func (k Keeper) SetSubscription(ctx sdk.Context, sub types.Subscription) {
	store := k.getStore(ctx)
	store.Set(sub.Key(), k.mustMarshal(&sub))
}

// IterateSubscriptions walks all subscription records until cb returns true
func (k Keeper) IterateSubscriptions(ctx sdk.Context, cb func(types.Subscription) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.SubscriptionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var sub types.Subscription
		k.mustUnmarshal(iterator.Value(), &sub)
		if cb(sub) {
			break
		}
	}
}

// dueTimeAfter adds a duration to a unix timestamp, guarding the int64 range.
func dueTimeAfter(now int64, seconds uint64) (int64, error) {
	if seconds > math.MaxInt64 || now > math.MaxInt64-int64(seconds) {
		return 0, types.ErrArithmeticOverflow.Wrapf("due time past %d + %d", now, seconds)
	}
	return now + int64(seconds), nil
}

// collectFromAccount escrows coins from a bech32 account into the module
// account. Zero amounts move nothing.
func (k Keeper) collectFromAccount(ctx sdk.Context, from string, amount uint64, denom string) error {
	if amount == 0 {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return err
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coins); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}
	return nil
}

// payToAccount releases escrowed coins from the module account to a bech32
// account. Zero amounts move nothing.
func (k Keeper) payToAccount(ctx sdk.Context, to string, amount uint64, denom string) error {
	if amount == 0 {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return err
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins)
}

// CreateFeedResult reports what a feed creation settled on.
type CreateFeedResult struct {
	DataSourceID         []byte
	PricePerSecondScaled uint64
	TotalCharged         uint64
	SubscriptionDueTime  int64
}

// CreateFeed resolves the feed's data source, prices the subscription,
// escrows the charge, and stores the new feed in the Active state.
func (k Keeper) CreateFeed(ctx sdk.Context, msg *types.MsgCreateFeed) (CreateFeedResult, error) {
	if k.HasFeed(ctx, msg.Authority, msg.Name) {
		return CreateFeedResult{}, types.ErrFeedExists.Wrapf("%s/%s", msg.Authority, msg.Name)
	}

	dataSourceID, err := k.ResolveDataSourceForFeed(
		ctx, msg.Authority, msg.DataSourceKind, msg.DataSourceName, msg.Source, msg.OwnerEth, msg.OwnerSignature,
	)
	if err != nil {
		return CreateFeedResult{}, err
	}

	params := k.GetParams(ctx)
	price, err := k.CalculatePricePerSecond(params, msg.MinSignatures, msg.FrequencySeconds)
	if err != nil {
		return CreateFeedResult{}, err
	}
	cost, err := SubscriptionCost(price, msg.DurationSeconds)
	if err != nil {
		return CreateFeedResult{}, err
	}
	total, err := checkedAdd(cost, msg.PriorityFeeBudget)
	if err != nil {
		return CreateFeedResult{}, err
	}

	now := ctx.BlockTime().Unix()
	due, err := dueTimeAfter(now, msg.DurationSeconds)
	if err != nil {
		return CreateFeedResult{}, err
	}

	if err := k.collectFromAccount(ctx, msg.Authority, total, params.FeeDenom); err != nil {
		return CreateFeedResult{}, err
	}

	feed := types.Feed{
		Name:                 msg.Name,
		Authority:            msg.Authority,
		FeedType:             msg.FeedType,
		JobID:                msg.JobID,
		DataSourceID:         dataSourceID,
		MinSignatures:        msg.MinSignatures,
		FrequencySeconds:     msg.FrequencySeconds,
		IPFSCid:              msg.IPFSCid,
		Balance:              total,
		SubscriptionDueTime:  due,
		PricePerSecondScaled: price,
		PriorityFeeAllowance: msg.PriorityFeeBudget,
		CreatedAt:            now,
	}
	k.SetFeed(ctx, feed)

	if k.metrics != nil {
		k.metrics.FeedsCreated.With(map[string]string{"feed_type": msg.FeedType.String()}).Inc()
	}

	k.Logger(ctx).Info("feed created",
		"feed", msg.Authority+"/"+msg.Name,
		"type", msg.FeedType.String(),
		"price_per_second_scaled", price,
		"charged", total,
		"due", due,
	)

	return CreateFeedResult{
		DataSourceID:         dataSourceID,
		PricePerSecondScaled: price,
		TotalCharged:         total,
		SubscriptionDueTime:  due,
	}, nil
}

// ExtendSubscription pushes a feed's due time further out, charging at the
// stored price. An expired feed resumes from now instead of its lapsed due
// time.
func (k Keeper) ExtendSubscription(ctx sdk.Context, msg *types.MsgExtendSubscription) (dueTime int64, totalCharged uint64, err error) {
	feed, err := k.GetFeed(ctx, msg.Authority, msg.FeedName)
	if err != nil {
		return 0, 0, err
	}

	cost, err := SubscriptionCost(feed.PricePerSecondScaled, msg.AdditionalSeconds)
	if err != nil {
		return 0, 0, err
	}
	total, err := checkedAdd(cost, msg.AdditionalPriorityBudget)
	if err != nil {
		return 0, 0, err
	}

	now := ctx.BlockTime().Unix()
	rebase := feed.SubscriptionDueTime
	if now > rebase {
		rebase = now
	}
	due, err := dueTimeAfter(rebase, msg.AdditionalSeconds)
	if err != nil {
		return 0, 0, err
	}

	params := k.GetParams(ctx)
	if err := k.collectFromAccount(ctx, msg.Authority, total, params.FeeDenom); err != nil {
		return 0, 0, err
	}

	feed.SubscriptionDueTime = due
	feed.Balance, err = checkedAdd(feed.Balance, total)
	if err != nil {
		return 0, 0, err
	}
	feed.PriorityFeeAllowance, err = checkedAdd(feed.PriorityFeeAllowance, msg.AdditionalPriorityBudget)
	if err != nil {
		return 0, 0, err
	}
	k.SetFeed(ctx, feed)

	if k.metrics != nil {
		k.metrics.SubscriptionExtensions.Inc()
	}

	k.Logger(ctx).Info("subscription extended",
		"feed", msg.Authority+"/"+msg.FeedName,
		"charged", total,
		"due", due,
	)
	return due, total, nil
}

// UpdateFeedConfig reconfigures a personal feed and reprices it, rescaling
// the remaining subscription time so the prepaid value carries over.
func (k Keeper) UpdateFeedConfig(ctx sdk.Context, msg *types.MsgUpdateFeedConfig) (price uint64, dueTime int64, err error) {
	feed, err := k.GetFeed(ctx, msg.Authority, msg.FeedName)
	if err != nil {
		return 0, 0, err
	}
	if feed.FeedType != types.FeedTypePersonal {
		return 0, 0, types.ErrNotSupported.Wrap("only personal feeds can be reconfigured")
	}

	params := k.GetParams(ctx)
	newPrice, err := k.CalculatePricePerSecond(params, msg.MinSignatures, msg.FrequencySeconds)
	if err != nil {
		return 0, 0, err
	}

	now := ctx.BlockTime().Unix()
	oldPrice := feed.PricePerSecondScaled

	// Rescale the remaining time so balance already paid buys the same
	// value at the new rate. Undefined at a zero rate on either side, and
	// moot once the subscription has lapsed.
	if oldPrice > 0 && newPrice > 0 && feed.SubscriptionDueTime > now {
		remaining := uint64(feed.SubscriptionDueTime - now)
		scaled, err := checkedMul(remaining, oldPrice)
		if err != nil {
			return 0, 0, err
		}
		rescaled, err := checkedDiv(scaled, newPrice)
		if err != nil {
			return 0, 0, err
		}
		due, err := dueTimeAfter(now, rescaled)
		if err != nil {
			return 0, 0, err
		}
		feed.SubscriptionDueTime = due
	}

	feed.MinSignatures = msg.MinSignatures
	feed.FrequencySeconds = msg.FrequencySeconds
	feed.IPFSCid = msg.IPFSCid
	feed.PricePerSecondScaled = newPrice
	k.SetFeed(ctx, feed)

	k.Logger(ctx).Info("feed reconfigured",
		"feed", msg.Authority+"/"+msg.FeedName,
		"old_price", oldPrice,
		"new_price", newPrice,
		"due", feed.SubscriptionDueTime,
	)
	return newPrice, feed.SubscriptionDueTime, nil
}

// TopUpFeed escrows additional coins against a feed's balance.
func (k Keeper) TopUpFeed(ctx sdk.Context, msg *types.MsgTopUpFeed) (balance uint64, err error) {
	feed, err := k.GetFeed(ctx, msg.Authority, msg.FeedName)
	if err != nil {
		return 0, err
	}

	params := k.GetParams(ctx)
	if err := k.collectFromAccount(ctx, msg.Authority, msg.Amount, params.FeeDenom); err != nil {
		return 0, err
	}

	feed.Balance, err = checkedAdd(feed.Balance, msg.Amount)
	if err != nil {
		return 0, err
	}
	k.SetFeed(ctx, feed)

	k.Logger(ctx).Info("feed topped up", "feed", msg.Authority+"/"+msg.FeedName, "amount", msg.Amount, "balance", feed.Balance)
	return feed.Balance, nil
}

// FundSubscription creates or funds the caller's prepaid subscription on a
// feed, used under the flat-fee policy. Personal feeds only meter their own
// authority.
func (k Keeper) FundSubscription(ctx sdk.Context, msg *types.MsgFundSubscription) (balance uint64, err error) {
	feed, err := k.GetFeed(ctx, msg.FeedAuthority, msg.FeedName)
	if err != nil {
		return 0, err
	}
	if feed.FeedType == types.FeedTypePersonal && msg.Consumer != feed.Authority {
		return 0, types.ErrNotFeedOwner.Wrap("personal feeds only meter their own authority")
	}

	params := k.GetParams(ctx)
	if err := k.collectFromAccount(ctx, msg.Consumer, msg.Amount, params.FeeDenom); err != nil {
		return 0, err
	}

	sub, err := k.GetSubscription(ctx, msg.Consumer, msg.FeedAuthority, msg.FeedName)
	if err != nil {
		sub = types.Subscription{
			Consumer:      msg.Consumer,
			FeedAuthority: msg.FeedAuthority,
			FeedName:      msg.FeedName,
			CreatedAt:     ctx.BlockTime().Unix(),
		}
	}
	sub.Balance, err = checkedAdd(sub.Balance, msg.Amount)
	if err != nil {
		return 0, err
	}
	k.SetSubscription(ctx, sub)

	k.Logger(ctx).Info("subscription funded",
		"consumer", msg.Consumer,
		"feed", msg.FeedAuthority+"/"+msg.FeedName,
		"balance", sub.Balance,
	)
	return sub.Balance, nil
}

// PublishResult reports what an accepted answer settled on.
type PublishResult struct {
	SignerCount uint32
	FeeCharged  uint64
}

// PublishAnswer validates a report against the feed's lifecycle and
// threshold, settles the publication fee under the active policy, and
// commits the answer to the feed's history.
func (k Keeper) PublishAnswer(ctx sdk.Context, msg *types.MsgPublishAnswer) (PublishResult, error) {
	feed, err := k.GetFeed(ctx, msg.FeedAuthority, msg.FeedName)
	if err != nil {
		return PublishResult{}, err
	}

	now := ctx.BlockTime().Unix()
	if !feed.IsActive(now) {
		return PublishResult{}, types.ErrSubscriptionExpired.Wrapf("due %d, now %d", feed.SubscriptionDueTime, now)
	}
	if msg.Timestamp <= feed.LatestAnswer.Timestamp {
		return PublishResult{}, types.ErrPastTimestamp.Wrapf("timestamp %d, latest %d", msg.Timestamp, feed.LatestAnswer.Timestamp)
	}
	if msg.Timestamp > now {
		return PublishResult{}, types.ErrFutureTimestamp.Wrapf("timestamp %d, now %d", msg.Timestamp, now)
	}
	answer := types.Answer{Value: msg.Value, Timestamp: msg.Timestamp}
	if answer.IsZero() {
		return PublishResult{}, types.ErrZeroValue
	}

	registry, err := k.GetNodeRegistry(ctx)
	if err != nil {
		return PublishResult{}, err
	}

	signers := k.CollectSigners(ctx, registry, msg.Attestations, msg.FeedAuthority, msg.FeedName, msg.Value, msg.Timestamp)
	if uint32(len(signers)) < feed.MinSignatures {
		return PublishResult{}, types.ErrNotEnoughSignatures.Wrapf("got %d, need %d", len(signers), feed.MinSignatures)
	}

	params := k.GetParams(ctx)
	var feeCharged uint64
	if params.FlatFeePerUpdate > 0 {
		feeCharged, err = k.settleFlatFee(ctx, &feed, msg.Submitter, params.FlatFeePerUpdate)
	} else {
		feeCharged, err = k.settleMeteredFee(ctx, &feed, msg.Submitter, msg.FeeBid, len(registry.Nodes), params.FeeDenom)
	}
	if err != nil {
		return PublishResult{}, err
	}

	ctx.GasMeter().ConsumeGas(gasPerHistoryWrite, "oracle_history_write")
	feed.RecordAnswer(answer)
	k.SetFeed(ctx, feed)

	for _, signer := range signers {
		k.StampNodeActivity(ctx, signer, now)
	}

	if k.metrics != nil {
		k.metrics.AnswersPublished.With(map[string]string{"feed_type": feed.FeedType.String()}).Inc()
		k.metrics.AttestationsAccepted.Add(float64(len(signers)))
		policy := "metered"
		if params.FlatFeePerUpdate > 0 {
			policy = "flat"
		}
		k.metrics.FeesCharged.With(map[string]string{"policy": policy}).Add(float64(feeCharged))
	}

	k.Logger(ctx).Info("answer published",
		"feed", msg.FeedAuthority+"/"+msg.FeedName,
		"timestamp", msg.Timestamp,
		"signers", len(signers),
		"fee", feeCharged,
	)
	return PublishResult{SignerCount: uint32(len(signers)), FeeCharged: feeCharged}, nil
}

// settleFlatFee charges the legacy per-update flat fee. Public feeds are
// free; personal feeds draw the fee from the submitter's prepaid
// subscription, and the coins stay in the module account as protocol
// revenue.
func (k Keeper) settleFlatFee(ctx sdk.Context, feed *types.Feed, submitter string, flatFee uint64) (uint64, error) {
	if feed.FeedType == types.FeedTypePublic {
		return 0, nil
	}

	sub, err := k.GetSubscription(ctx, submitter, feed.Authority, feed.Name)
	if err != nil {
		return 0, err
	}
	if sub.Balance < flatFee {
		return 0, types.ErrInsufficientBalance.Wrapf("subscription balance %d, fee %d", sub.Balance, flatFee)
	}
	sub.Balance -= flatFee
	k.SetSubscription(ctx, sub)
	return flatFee, nil
}

// settleMeteredFee charges the canonical usage-priced fee from the feed's
// escrowed balance and pays it out to the submitter.
func (k Keeper) settleMeteredFee(ctx sdk.Context, feed *types.Feed, submitter string, feeBid uint64, nodeCount int, denom string) (uint64, error) {
	units := EstimateComputeUnits(nodeCount, len(feed.AnswerHistory))
	fee, err := ComputePriorityFee(feeBid, units)
	if err != nil {
		return 0, err
	}

	consumedAfter, err := checkedAdd(feed.ConsumedPriorityFees, fee)
	if err != nil {
		return 0, err
	}
	if consumedAfter > feed.PriorityFeeAllowance {
		return 0, types.ErrInsufficientPriorityFeeBudget.Wrapf("consumed %d + fee %d exceeds allowance %d",
			feed.ConsumedPriorityFees, fee, feed.PriorityFeeAllowance)
	}
	if feed.Balance < fee {
		return 0, types.ErrInsufficientBalance.Wrapf("feed balance %d, fee %d", feed.Balance, fee)
	}

	if err := k.payToAccount(ctx, submitter, fee, denom); err != nil {
		return 0, err
	}

	feed.Balance -= fee
	feed.ConsumedPriorityFees = consumedAfter
	return fee, nil
}
