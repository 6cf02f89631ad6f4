package config

const (
	// DefaultMaxFrames is the default maximum nesting depth of protected blocks.
	DefaultMaxFrames = 16

	// DefaultMessageSize is the default capacity in bytes of the message
	// buffer, terminator included.
	DefaultMessageSize = 128
)

// Config sizes a runtime instance.
type Config struct {
	// MaxFrames is the maximum number of nested protected blocks.
	MaxFrames int `yaml:"max_frames" json:"max_frames"`

	// MessageSize is the message buffer capacity. Messages are truncated to
	// MessageSize-1 bytes.
	MessageSize int `yaml:"message_size" json:"message_size"`

	// Provenance controls whether raised errors record their source location.
	Provenance bool `yaml:"provenance" json:"provenance"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxFrames:   DefaultMaxFrames,
		MessageSize: DefaultMessageSize,
		Provenance:  true,
	}
}
