package uuidcodec

import "github.com/pwnedgod/uuidcodec/logger"

type Option func(*registryConfig)

type registryConfig struct {
	serializer        SerializeFunc
	deserializer      DeserializeFunc
	serializerBinds   int
	deserializerBinds int
	logger            logger.Logger
}

func defaultConfig() *registryConfig {
	return &registryConfig{
		serializer:   DefaultSerializer,
		deserializer: DefaultDeserializer,
		logger:       logger.Nop(),
	}
}

// WithSerializer replaces the default serializer. A nil fn is ignored.
func WithSerializer(fn SerializeFunc) Option {
	return func(cfg *registryConfig) {
		if fn == nil {
			return
		}
		cfg.serializer = fn
		cfg.serializerBinds++
	}
}

// WithDeserializer replaces the default deserializer. A nil fn is ignored.
func WithDeserializer(fn DeserializeFunc) Option {
	return func(cfg *registryConfig) {
		if fn == nil {
			return
		}
		cfg.deserializer = fn
		cfg.deserializerBinds++
	}
}

// WithOverride replaces either or both sides of the codec.
func WithOverride(serializer SerializeFunc, deserializer DeserializeFunc) Option {
	return func(cfg *registryConfig) {
		WithSerializer(serializer)(cfg)
		WithDeserializer(deserializer)(cfg)
	}
}

func WithLogger(l logger.Logger) Option {
	return func(cfg *registryConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}
