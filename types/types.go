// Package types holds the value shapes the SDK caches carry: analytics
// aggregates, per-agent metrics, raw account state, and the
// program-scan filter with its canonical serialization.
package types

import "time"

// AgentAnalytics aggregates protocol-wide agent activity.
type AgentAnalytics struct {
	TotalAgents       uint64
	ActiveAgents      uint64
	AverageReputation float64
	RecentlyActive    uint64 // agents seen in the last 24h
	LastUpdated       time.Time
}

// MessageAnalytics aggregates message traffic over a bounded window.
type MessageAnalytics struct {
	TotalMessages   uint64
	MessagesLast24h uint64
	AverageSize     float64 // payload bytes
	DeliveryRate    float64
	LastUpdated     time.Time
}

// ChannelAnalytics aggregates channel usage.
type ChannelAnalytics struct {
	TotalChannels       uint64
	ActiveChannels      uint64
	AverageParticipants float64
	TotalEscrowLamports uint64
	LastUpdated         time.Time
}

// AgentMetrics is the per-agent activity breakdown.
type AgentMetrics struct {
	AgentID        string
	MessagesSent   uint64
	ChannelsJoined uint64
	Reputation     float64
	LastActive     time.Time
}

// AccountInfo is the decoded state of a single on-chain account as the
// RPC layer hands it to us. The cache stores it verbatim.
type AccountInfo struct {
	Address    string // base58 account address
	Owner      string // base58 owning program
	Lamports   uint64
	Data       []byte
	Executable bool
	RentEpoch  uint64
}
