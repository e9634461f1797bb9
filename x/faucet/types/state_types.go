package types

// LastRequest is the per-account cooldown record, stamped on every
// successful request.
type LastRequest struct {
	// Address is the bech32 account the tokens were sent to.
	Address string `json:"address"`

	// Timestamp is the block time of the request in unix seconds.
	Timestamp int64 `json:"timestamp"`
}
