package uuidcodec

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"

	"github.com/pwnedgod/uuidcodec/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotString = errors.New("not a JSON string")

type defaultRegistry struct {
	serializer   SerializeFunc
	deserializer DeserializeFunc
	logger       logger.Logger
}

// NewRegistry binds the default codec, then applies opts. Binding the same
// side more than once fails with ErrConfigurationConflict.
func NewRegistry(opts ...Option) (Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var result *multierror.Error
	if cfg.serializerBinds > 1 {
		result = multierror.Append(result, newConflictError("serializer"))
	}
	if cfg.deserializerBinds > 1 {
		result = multierror.Append(result, newConflictError("deserializer"))
	}
	if err := result.ErrorOrNil(); err != nil {
		cfg.logger.Error("registry configuration rejected", "error", err)
		return nil, err
	}

	if cfg.serializerBinds == 1 {
		cfg.logger.Debug("serializer overridden")
	}
	if cfg.deserializerBinds == 1 {
		cfg.logger.Debug("deserializer overridden")
	}

	return &defaultRegistry{
		serializer:   cfg.serializer,
		deserializer: cfg.deserializer,
		logger:       cfg.logger,
	}, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(opts ...Option) Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultSerializer writes the canonical lowercase form.
func DefaultSerializer(value uuid.UUID, out Sink) error {
	return out.WriteString(value.String())
}

// DefaultDeserializer accepts the canonical form only.
func DefaultDeserializer(text string, _ Context) (uuid.UUID, error) {
	return ParseCanonical(text)
}

func (r defaultRegistry) Serializer() SerializeFunc {
	return r.serializer
}

func (r defaultRegistry) Deserializer() DeserializeFunc {
	return r.deserializer
}

func (r defaultRegistry) Logger() logger.Logger {
	return r.logger
}

func (r defaultRegistry) Serialize(value uuid.UUID, out Sink) error {
	if err := r.serializer(value, out); err != nil {
		r.logger.Debug("serializer failed", "value", value.String(), "error", err)
		return err
	}
	return nil
}

func (r defaultRegistry) Deserialize(text string, ctx Context) (uuid.UUID, error) {
	u, err := r.deserializer(text, ctx)
	if err != nil {
		return uuid.Nil, r.reject(err, ctx.Format)
	}
	return u, nil
}

func (r defaultRegistry) Encode(value uuid.UUID) (string, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	if err := r.serialize(value, stream); err != nil {
		return "", err
	}
	return string(stream.Buffer()), nil
}

func (r defaultRegistry) Decode(text string) (uuid.UUID, error) {
	iter := json.BorrowIterator([]byte(text))
	defer json.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.StringValue {
		return uuid.Nil, r.reject(NewMalformedValueError("token", text, errNotString), FormatJSON)
	}
	s := iter.ReadString()
	if iter.Error != nil {
		return uuid.Nil, r.reject(NewMalformedValueError("token", text, iter.Error), FormatJSON)
	}

	// Anything but whitespace after the string is trailing data.
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return uuid.Nil, r.reject(NewMalformedValueError("token", text, errors.New("trailing data after string")), FormatJSON)
	}

	return r.Deserialize(s, Context{Format: FormatJSON})
}

func (r defaultRegistry) Extension() jsoniter.Extension {
	return &uuidExtension{reg: r}
}

// serialize runs the active serializer against a JSON stream and checks it
// wrote exactly one string.
func (r defaultRegistry) serialize(value uuid.UUID, stream *jsoniter.Stream) error {
	sink := &streamSink{stream: stream}
	if err := r.Serialize(value, sink); err != nil {
		return err
	}
	if !sink.written {
		return fmt.Errorf("%w: nothing written for %s", ErrInvalidOutput, value)
	}
	return stream.Error
}

func (r defaultRegistry) reject(err error, format Format) error {
	r.logger.Debug("value rejected", "format", format, "error", err)
	return err
}
