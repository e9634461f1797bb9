package keeper

import (
	"bytes"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// RegisterInvariants registers all oracle module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "registry-bounds",
		RegistryBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "history-bounds",
		HistoryBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "allowance-ordering",
		AllowanceOrderingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-solvency",
		ModuleSolvencyInvariant(k))
}

// AllInvariants runs all invariants of the oracle module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := RegistryBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = HistoryBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = AllowanceOrderingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleSolvencyInvariant(k)(ctx)
	}
}

// RegistryBoundsInvariant checks that the node registry stays within its
// capacity and holds well-formed, unique identities
func RegistryBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
			issues []string
		)

		registry, err := k.GetNodeRegistry(ctx)
		if err == nil {
			if len(registry.Nodes) > types.MaxNodes {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"registry holds %d nodes, capacity %d",
					len(registry.Nodes), types.MaxNodes,
				))
			}

			zero := make([]byte, types.NodeIdentityLength)
			seen := make(map[string]struct{}, len(registry.Nodes))
			for i, identity := range registry.Nodes {
				if len(identity) != types.NodeIdentityLength {
					broken = true
					issues = append(issues, fmt.Sprintf(
						"node %d identity is %d bytes", i, len(identity),
					))
					continue
				}
				if bytes.Equal(identity, zero) {
					broken = true
					issues = append(issues, fmt.Sprintf("node %d identity is zero", i))
				}
				if _, dup := seen[string(identity)]; dup {
					broken = true
					issues = append(issues, fmt.Sprintf("node %d identity %x duplicated", i, identity))
				}
				seen[string(identity)] = struct{}{}
			}
		}

		if len(issues) > 0 {
			msg = fmt.Sprintf("%d registry issues:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "registry-bounds",
			msg,
		), broken
	}
}

// HistoryBoundsInvariant checks that every feed's answer ring stays within
// capacity with a coherent cursor
func HistoryBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
			issues []string
		)

		k.IterateFeeds(ctx, func(feed types.Feed) bool {
			if len(feed.AnswerHistory) > types.MaxAnswerHistory {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"feed %s/%s retains %d answers, capacity %d",
					feed.Authority, feed.Name, len(feed.AnswerHistory), types.MaxAnswerHistory,
				))
				return false
			}

			if len(feed.AnswerHistory) < types.MaxAnswerHistory {
				if feed.HistoryCursor != uint64(len(feed.AnswerHistory)) {
					broken = true
					issues = append(issues, fmt.Sprintf(
						"feed %s/%s cursor %d does not track partial history length %d",
						feed.Authority, feed.Name, feed.HistoryCursor, len(feed.AnswerHistory),
					))
				}
			} else if feed.HistoryCursor > types.MaxAnswerHistory {
				// Cursor equals capacity exactly once, on the write that
				// fills the ring; wrapped writes keep it below capacity.
				broken = true
				issues = append(issues, fmt.Sprintf(
					"feed %s/%s cursor %d out of ring range",
					feed.Authority, feed.Name, feed.HistoryCursor,
				))
			}
			return false
		})

		if len(issues) > 0 {
			msg = fmt.Sprintf("%d history issues:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "history-bounds",
			msg,
		), broken
	}
}

// AllowanceOrderingInvariant checks that no feed has consumed more priority
// fees than its allowance
func AllowanceOrderingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
			issues []string
		)

		k.IterateFeeds(ctx, func(feed types.Feed) bool {
			if feed.ConsumedPriorityFees > feed.PriorityFeeAllowance {
				broken = true
				issues = append(issues, fmt.Sprintf(
					"feed %s/%s consumed %d of allowance %d",
					feed.Authority, feed.Name, feed.ConsumedPriorityFees, feed.PriorityFeeAllowance,
				))
			}
			return false
		})

		if len(issues) > 0 {
			msg = fmt.Sprintf("%d allowance issues:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "allowance-ordering",
			msg,
		), broken
	}
}

// ModuleSolvencyInvariant checks that the module account can cover every
// tracked feed and subscription balance
func ModuleSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		tracked := math.ZeroInt()
		k.IterateFeeds(ctx, func(feed types.Feed) bool {
			tracked = tracked.Add(math.NewIntFromUint64(feed.Balance))
			return false
		})
		k.IterateSubscriptions(ctx, func(sub types.Subscription) bool {
			tracked = tracked.Add(math.NewIntFromUint64(sub.Balance))
			return false
		})

		params := k.GetParams(ctx)
		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		held := k.bankKeeper.GetBalance(ctx, moduleAddr, params.FeeDenom).Amount

		var msg string
		broken := held.LT(tracked)
		if broken {
			msg = fmt.Sprintf(
				"module account holds %s%s, tracked balances total %s%s\n",
				held, params.FeeDenom, tracked, params.FeeDenom,
			)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "module-solvency",
			msg,
		), broken
	}
}
