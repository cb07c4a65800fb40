package types

// escrow transfer events
const (
	EventTypePacket           = "fungible_token_packet"
	EventTypeTimeout          = "timeout"
	EventTypeRefund           = "refund"
	EventTypeChannelConnected = "channel_connected"
	EventTypeChannelClose     = "channel_closed"

	AttributeKeySender              = "sender"
	AttributeKeyReceiver            = "receiver"
	AttributeKeyDenom               = "denom"
	AttributeKeyAmount              = "amount"
	AttributeKeyAckSuccess          = "success"
	AttributeKeyAck                 = "acknowledgement"
	AttributeKeyAckError            = "error"
	AttributeKeyRefundReceiver      = "refund_receiver"
	AttributeKeyRefundAmount        = "refund_amount"
	AttributeKeyFailureReason       = "ibc_error"
	AttributeKeyChannelID           = "channel_id"
	AttributeKeyCounterpartyPortID  = "counterparty_port_id"
	AttributeKeyCounterpartyChannel = "counterparty_channel_id"
	AttributeKeyConnectionID        = "connection_id"
	AttributeKeyOutstanding         = "outstanding"
)
