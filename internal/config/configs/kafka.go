package configs

// Kafka configures delivery event publishing. Publishing is disabled when
// Brokers is empty.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"campaign-deliveries"`
}

// Enabled reports whether events should be published.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}
