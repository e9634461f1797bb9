package keeper

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veris-chain/veris/x/oracle/types"
)

// Per-candidate scan cost, charged whether or not the candidate is accepted.
const gasPerAttestation = 1_000

// CollectSigners scans the attestation candidates for a report and returns
// the distinct registered signer identities that attested to it.
//
// A candidate counts when it parses, its embedded message matches the
// expected target for its scheme, and its identity is in the registry.
// Native-scheme signers attest to the canonical report bytes; foreign-chain
// signers attest to the report's keccak digest. Candidates failing any check
// are skipped, not fatal: a publisher may relay whatever the nodes gossiped,
// and only the distinct-signer count decides acceptance.
func (k Keeper) CollectSigners(
	ctx sdk.Context,
	registry types.NodeRegistry,
	attestations []types.Attestation,
	feedAuthority, feedName string,
	value []byte,
	timestamp int64,
) [][]byte {
	reportMessage := types.CanonicalReportMessage(feedAuthority, feedName, value, timestamp)
	reportDigest := types.ReportDigest(feedAuthority, feedName, value, timestamp)

	signers := make([][]byte, 0, len(attestations))
	seen := make(map[string]struct{}, len(attestations))

	for i, att := range attestations {
		ctx.GasMeter().ConsumeGas(gasPerAttestation, "oracle_attestation_scan")

		parsed, err := att.Parse()
		if err != nil {
			k.Logger(ctx).Debug("skipping malformed attestation", "index", i, "error", err)
			continue
		}

		var target []byte
		switch att.Scheme {
		case types.AttestationSchemeEd25519:
			target = reportMessage
		case types.AttestationSchemeSecp256k1:
			target = reportDigest
		}
		if !bytes.Equal(parsed.Message, target) {
			k.Logger(ctx).Debug("skipping attestation over different report", "index", i)
			continue
		}

		if !registry.Contains(parsed.Identity) {
			k.Logger(ctx).Debug("skipping attestation from unregistered identity", "index", i)
			continue
		}

		key := string(parsed.Identity)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		signers = append(signers, parsed.Identity)
	}

	return signers
}
