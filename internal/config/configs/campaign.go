package configs

// Campaign tunes campaign management.
type Campaign struct {
	// ListLimit caps how many campaigns the listing returns.
	ListLimit int `env:"LIST_LIMIT" envDefault:"200"`
}
