package api

import (
	"encoding/hex"

	oracletypes "github.com/veris-chain/veris/x/oracle/types"
)

// View types rendered by the gateway. Stored records carry raw byte
// fields; views hex-encode them so responses stay plain JSON strings.

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	ChainID   string `json:"chain_id"`
}

type registryView struct {
	Authority string   `json:"authority"`
	Nodes     []string `json:"nodes"`
	Size      int      `json:"size"`
	Capacity  int      `json:"capacity"`
}

func newRegistryView(registry oracletypes.NodeRegistry) registryView {
	nodes := make([]string, 0, len(registry.Nodes))
	for _, identity := range registry.Nodes {
		nodes = append(nodes, hex.EncodeToString(identity))
	}
	return registryView{
		Authority: registry.Authority,
		Nodes:     nodes,
		Size:      len(registry.Nodes),
		Capacity:  oracletypes.MaxNodes,
	}
}

type answerView struct {
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

func newAnswerView(a oracletypes.Answer) answerView {
	return answerView{
		Value:     hex.EncodeToString(a.Value),
		Timestamp: a.Timestamp,
	}
}

type feedView struct {
	Name                 string     `json:"name"`
	Authority            string     `json:"authority"`
	FeedType             string     `json:"feed_type"`
	JobID                string     `json:"job_id,omitempty"`
	DataSourceID         string     `json:"data_source_id"`
	MinSignatures        uint32     `json:"min_signatures"`
	FrequencySeconds     uint64     `json:"frequency_seconds"`
	IPFSCid              string     `json:"ipfs_cid"`
	LatestAnswer         answerView `json:"latest_answer"`
	Balance              uint64     `json:"balance"`
	SubscriptionDueTime  int64      `json:"subscription_due_time"`
	PricePerSecondScaled uint64     `json:"price_per_second_scaled"`
	PriorityFeeAllowance uint64     `json:"priority_fee_allowance"`
	ConsumedPriorityFees uint64     `json:"consumed_priority_fees"`
	CreatedAt            int64      `json:"created_at"`
	Active               bool       `json:"active"`
}

func newFeedView(feed oracletypes.Feed, now int64) feedView {
	return feedView{
		Name:                 feed.Name,
		Authority:            feed.Authority,
		FeedType:             feed.FeedType.String(),
		JobID:                hex.EncodeToString(feed.JobID),
		DataSourceID:         hex.EncodeToString(feed.DataSourceID),
		MinSignatures:        feed.MinSignatures,
		FrequencySeconds:     feed.FrequencySeconds,
		IPFSCid:              feed.IPFSCid,
		LatestAnswer:         newAnswerView(feed.LatestAnswer),
		Balance:              feed.Balance,
		SubscriptionDueTime:  feed.SubscriptionDueTime,
		PricePerSecondScaled: feed.PricePerSecondScaled,
		PriorityFeeAllowance: feed.PriorityFeeAllowance,
		ConsumedPriorityFees: feed.ConsumedPriorityFees,
		CreatedAt:            feed.CreatedAt,
		Active:               feed.IsActive(now),
	}
}

type historyView struct {
	Authority string       `json:"authority"`
	Name      string       `json:"name"`
	Answers   []answerView `json:"answers"`
}

type dataSourceView struct {
	ID        string `json:"id"`
	Owner     string `json:"owner,omitempty"`
	OwnerEth  string `json:"owner_eth"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	CreatedAt int64  `json:"created_at"`
}

func newDataSourceView(source oracletypes.DataSource) dataSourceView {
	return dataSourceView{
		ID:        hex.EncodeToString(source.ID),
		Owner:     source.Owner,
		OwnerEth:  hex.EncodeToString(source.OwnerEth),
		Kind:      source.Kind.String(),
		Name:      source.Name,
		Source:    source.Source,
		CreatedAt: source.CreatedAt,
	}
}

type ethLinkView struct {
	OwnerEth  string `json:"owner_eth"`
	Grantee   string `json:"grantee"`
	CreatedAt int64  `json:"created_at"`
}

func newEthLinkView(link oracletypes.EthLink) ethLinkView {
	return ethLinkView{
		OwnerEth:  hex.EncodeToString(link.OwnerEth),
		Grantee:   link.Grantee,
		CreatedAt: link.CreatedAt,
	}
}
