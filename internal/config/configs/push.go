package configs

import "time"

const (
	PushTransportFCM = "fcm"
	PushTransportLog = "log"
)

// Push tunes campaign delivery. The log transport only logs what would be
// sent and is meant for local development.
type Push struct {
	Transport        string        `env:"TRANSPORT" envDefault:"log"`
	BatchSize        int           `env:"BATCH_SIZE" envDefault:"500"`
	ExpiresIn        time.Duration `env:"EXPIRES_IN" envDefault:"2m"`
	AndroidChannelID string        `env:"ANDROID_CHANNEL_ID" envDefault:"rundi_default"`
}
