package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/pwnedgod/uuidcodec"
	"github.com/pwnedgod/uuidcodec/codec"
)

type (
	Option func(*codecConfig)

	codecConfig struct {
		config jsoniter.Config
	}

	jsonCodec struct {
		api jsoniter.API
	}
)

// WithConfig sets the json-iterator configuration the codec is frozen from.
func WithConfig(config jsoniter.Config) Option {
	return func(cfg *codecConfig) {
		cfg.config = config
	}
}

// NewCodec builds a JSON codec bound to reg. A nil reg uses the default codec.
func NewCodec(reg uuidcodec.Registry, opts ...Option) codec.Codec {
	if reg == nil {
		reg = uuidcodec.MustNewRegistry()
	}

	// Same settings as jsoniter.ConfigCompatibleWithStandardLibrary.
	cfg := &codecConfig{
		config: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	api := cfg.config.Froze()
	api.RegisterExtension(reg.Extension())

	return &jsonCodec{api: api}
}

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

// Unmarshal stops at the first rejected value. As with encoding/json, v may
// already hold the fields and map entries decoded before it. A map entry whose
// key was rejected can be left under the zero UUID.
func (c jsonCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
