package usecase

import (
	"fmt"
	"strings"
)

// Channel identifies the notifier variant used for a delivery.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Channels lists supported channels in display order.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS}
}

// ParseChannel resolves a user supplied channel name.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case ChannelEmail:
		return ChannelEmail, nil
	case ChannelSMS:
		return ChannelSMS, nil
	default:
		return "", fmt.Errorf("unknown channel %q (want email or sms): %w", s, ErrUsage)
	}
}

func (c Channel) String() string {
	return string(c)
}

// Log sinks accepted in [logger] sink.
const (
	LogSinkConsole = "console"
	LogSinkDiscard = "discard"
)

// Config contains runtime configuration derived from flags and the config file.
type Config struct {
	Verbose     bool
	ConfigPath  string
	EmailPrefix string
	SMSPrefix   string
	LogSink     string
	LogPrefix   string
	LogLevel    string
}

// Prefix returns the line prefix configured for a channel.
func (c *Config) Prefix(channel Channel) string {
	switch channel {
	case ChannelEmail:
		return c.EmailPrefix
	case ChannelSMS:
		return c.SMSPrefix
	default:
		return ""
	}
}

// Scenario is one canned notification of the demonstration run.
type Scenario struct {
	Channel   Channel
	Recipient string
	Content   string
}
