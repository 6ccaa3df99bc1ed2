package uuidcodec

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/pwnedgod/uuidcodec/logger"
)

type (
	// Format names the wire format a value is being decoded from.
	Format string

	// Context is handed to deserializers.
	Context struct {
		Format Format
	}

	// Sink receives the textual form of a value produced by a serializer.
	Sink interface {
		WriteString(s string) error
	}

	SerializeFunc func(value uuid.UUID, out Sink) error

	DeserializeFunc func(text string, ctx Context) (uuid.UUID, error)

	Registry interface {
		// The active serializer.
		Serializer() SerializeFunc

		// The active deserializer.
		Deserializer() DeserializeFunc

		// Serialize runs the active serializer and logs its failures.
		Serialize(value uuid.UUID, out Sink) error

		// Deserialize runs the active deserializer and logs rejected values.
		Deserialize(text string, ctx Context) (uuid.UUID, error)

		// The logger the registry reports to.
		Logger() logger.Logger

		// Encode a value into JSON text using the active serializer.
		Encode(value uuid.UUID) (string, error)

		// Decode JSON text into a value using the active deserializer.
		// The text must hold a single JSON string.
		Decode(text string) (uuid.UUID, error)

		// Extension routes every uuid.UUID handled by a json-iterator API through
		// the active serializer and deserializer.
		Extension() jsoniter.Extension
	}
)

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)
