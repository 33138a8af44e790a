package domain

import "time"

const (
	// MaxBatchSize is the largest number of tokens a multicast send accepts.
	MaxBatchSize = 500
	// TokenPrefixLen is how much of a token is echoed back in failure records.
	TokenPrefixLen = 24

	// CodeMulticastError marks tokens whose whole batch was rejected by the
	// transport.
	CodeMulticastError = "multicast-error"
	// CodeCancelled marks tokens that were never dispatched because the send
	// was cancelled.
	CodeCancelled = "delivery-cancelled"
	// CodeMissingResponse marks tokens the transport returned no outcome for.
	CodeMissingResponse = "missing-response"
)

// SendOutcome is the transport's verdict for one token of a multicast send.
type SendOutcome struct {
	Success   bool
	MessageID string
	Code      string
	Message   string
}

// FailureRecord describes one token that was not delivered.
type FailureRecord struct {
	Token   string `json:"token"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// DeliveryResult aggregates one send across all batches. Failed always
// equals Requested minus Sent and every failed token has one record in
// Errors.
type DeliveryResult struct {
	Requested int             `json:"requestedTokens"`
	Sent      int             `json:"sentTokens"`
	Failed    int             `json:"failedTokens"`
	Errors    []FailureRecord `json:"errors"`
	Batches   int             `json:"-"`
	Cancelled bool            `json:"-"`
}

// SendResult is what a send-now call returns: the refreshed campaign and
// the delivery statistics.
type SendResult struct {
	Campaign *Campaign
	Stats    DeliveryResult
}

// TruncateToken shortens a token to TokenPrefixLen characters so logs and
// responses never carry a complete credential.
func TruncateToken(token string) string {
	if len(token) <= TokenPrefixLen {
		return token
	}
	return token[:TokenPrefixLen]
}

// PartitionTokens splits entries into contiguous batches of at most size
// entries, preserving order. A non-positive size or one above MaxBatchSize
// is clamped to MaxBatchSize.
func PartitionTokens(entries []TokenEntry, size int) [][]TokenEntry {
	if size <= 0 || size > MaxBatchSize {
		size = MaxBatchSize
	}
	batches := make([][]TokenEntry, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		batches = append(batches, entries[start:end])
	}
	return batches
}

// SendRecord is the summary of a send written back onto a campaign.
type SendRecord struct {
	SentAt     time.Time
	SentCount  int
	LastUpdate time.Time
}
