package types

// Oracle module event types
const (
	// Registry events
	EventTypeRegistryInitialized = "oracle_registry_initialized"
	EventTypeNodeAdded           = "oracle_node_added"
	EventTypeNodeRemoved         = "oracle_node_removed"

	// Data source events
	EventTypeDataSourceCreated = "oracle_data_source_created"
	EventTypeLinkCreated       = "oracle_link_created"
	EventTypeLinkRevoked       = "oracle_link_revoked"

	// Feed events
	EventTypeFeedCreated          = "oracle_feed_created"
	EventTypeFeedConfigUpdated    = "oracle_feed_config_updated"
	EventTypeSubscriptionExtended = "oracle_subscription_extended"
	EventTypeFeedToppedUp         = "oracle_feed_topped_up"
	EventTypeSubscriptionFunded   = "oracle_subscription_funded"
	EventTypeAnswerPublished      = "oracle_answer_published"

	// Parameter events
	EventTypeParamsUpdated = "oracle_params_updated"
)

// Oracle module event attribute keys
const (
	AttributeKeyAuthority    = "authority"
	AttributeKeyIdentity     = "identity"
	AttributeKeyNodeCount    = "node_count"
	AttributeKeyFeedName     = "feed_name"
	AttributeKeyFeedType     = "feed_type"
	AttributeKeyDataSourceID = "data_source_id"
	AttributeKeyOwner        = "owner"
	AttributeKeyGrantee      = "grantee"
	AttributeKeyValue        = "value"
	AttributeKeyTimestamp    = "timestamp"
	AttributeKeySigners      = "signers"
	AttributeKeyFee          = "fee"
	AttributeKeyAmount       = "amount"
	AttributeKeyDueTime      = "due_time"
	AttributeKeyPrice        = "price"
	AttributeKeyConsumer     = "consumer"
	AttributeKeySubmitter    = "submitter"
)
