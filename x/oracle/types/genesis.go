package types

import (
	"bytes"
	"fmt"
)

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	Params        Params         `json:"params"`
	Registry      *NodeRegistry  `json:"registry,omitempty"`
	NodeAccounts  []NodeAccount  `json:"node_accounts"`
	DataSources   []DataSource   `json:"data_sources"`
	EthLinks      []EthLink      `json:"eth_links"`
	Feeds         []Feed         `json:"feeds"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Registry:      nil,
		NodeAccounts:  []NodeAccount{},
		DataSources:   []DataSource{},
		EthLinks:      []EthLink{},
		Feeds:         []Feed{},
		Subscriptions: []Subscription{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.Registry != nil {
		if len(gs.Registry.Nodes) > MaxNodes {
			return fmt.Errorf("registry holds %d nodes, limit is %d", len(gs.Registry.Nodes), MaxNodes)
		}
		seen := make(map[string]struct{}, len(gs.Registry.Nodes))
		for _, identity := range gs.Registry.Nodes {
			if len(identity) != NodeIdentityLength {
				return fmt.Errorf("node identity must be %d bytes, got %d", NodeIdentityLength, len(identity))
			}
			if bytes.Equal(identity, make([]byte, NodeIdentityLength)) {
				return fmt.Errorf("node identity cannot be all zeroes")
			}
			key := string(identity)
			if _, ok := seen[key]; ok {
				return fmt.Errorf("duplicate node identity %x", identity)
			}
			seen[key] = struct{}{}
		}
	}

	feedKeys := make(map[string]struct{}, len(gs.Feeds))
	for _, feed := range gs.Feeds {
		if feed.Name == "" || len(feed.Name) > MaxFeedNameLength {
			return fmt.Errorf("feed name %q out of bounds", feed.Name)
		}
		if feed.MinSignatures == 0 {
			return fmt.Errorf("feed %q min signatures must be positive", feed.Name)
		}
		if feed.FrequencySeconds == 0 {
			return fmt.Errorf("feed %q frequency must be positive", feed.Name)
		}
		if len(feed.AnswerHistory) > MaxAnswerHistory {
			return fmt.Errorf("feed %q history holds %d answers, limit is %d", feed.Name, len(feed.AnswerHistory), MaxAnswerHistory)
		}
		if feed.ConsumedPriorityFees > feed.PriorityFeeAllowance {
			return fmt.Errorf("feed %q consumed priority fees exceed allowance", feed.Name)
		}
		key := string(feed.Key())
		if _, ok := feedKeys[key]; ok {
			return fmt.Errorf("duplicate feed %s/%s", feed.Authority, feed.Name)
		}
		feedKeys[key] = struct{}{}
	}

	sourceIDs := make(map[string]struct{}, len(gs.DataSources))
	for _, source := range gs.DataSources {
		if err := source.Kind.Validate(); err != nil {
			return err
		}
		if len(source.OwnerEth) != EthAddressLength {
			return fmt.Errorf("data source %q owner address must be %d bytes", source.Name, EthAddressLength)
		}
		key := string(source.ID)
		if _, ok := sourceIDs[key]; ok {
			return fmt.Errorf("duplicate data source id %x", source.ID)
		}
		sourceIDs[key] = struct{}{}
	}

	linkKeys := make(map[string]struct{}, len(gs.EthLinks))
	for _, link := range gs.EthLinks {
		if len(link.OwnerEth) != EthAddressLength {
			return fmt.Errorf("eth link owner address must be %d bytes", EthAddressLength)
		}
		if link.Grantee == "" {
			return fmt.Errorf("eth link grantee cannot be empty")
		}
		key := string(link.OwnerEth) + "/" + link.Grantee
		if _, ok := linkKeys[key]; ok {
			return fmt.Errorf("duplicate eth link %x/%s", link.OwnerEth, link.Grantee)
		}
		linkKeys[key] = struct{}{}
	}

	subKeys := make(map[string]struct{}, len(gs.Subscriptions))
	for _, sub := range gs.Subscriptions {
		if sub.Consumer == "" || sub.FeedAuthority == "" || sub.FeedName == "" {
			return fmt.Errorf("subscription key fields cannot be empty")
		}
		key := string(sub.Key())
		if _, ok := subKeys[key]; ok {
			return fmt.Errorf("duplicate subscription %s on %s/%s", sub.Consumer, sub.FeedAuthority, sub.FeedName)
		}
		subKeys[key] = struct{}{}
	}

	return nil
}
