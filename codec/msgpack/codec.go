// Package msgpack provides a MessagePack codec whose UUIDs go through a
// uuidcodec.Registry.
//
// The msgpack type registry is process-wide, so the binding is too: the
// registry passed to the latest Install (or NewCodec) call is the one used
// by every msgpack encoder and decoder. Install before the first encode.
package msgpack

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/pwnedgod/uuidcodec"
	"github.com/pwnedgod/uuidcodec/codec"
)

type (
	msgpackCodec struct {
	}

	encoderSink struct {
		enc     *msgpack.Encoder
		written bool
	}
)

var (
	installOnce sync.Once
	active      atomic.Pointer[uuidcodec.Registry]
)

// Install makes reg the UUID codec for all msgpack encoding in the process.
// A nil reg installs the default codec.
func Install(reg uuidcodec.Registry) {
	if reg == nil {
		reg = uuidcodec.MustNewRegistry()
	}
	active.Store(&reg)

	// Encoders for pointers and structs capture the element encoder once, so
	// the type itself is registered only once and dispatches to the active
	// registry.
	installOnce.Do(func() {
		msgpack.Register(uuid.UUID{}, encodeUUID, decodeUUID)
	})
}

func NewCodec(reg uuidcodec.Registry) codec.Codec {
	Install(reg)
	return &msgpackCodec{}
}

func (c msgpackCodec) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c msgpackCodec) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

func (s *encoderSink) WriteString(v string) error {
	if s.written {
		return fmt.Errorf("%w: value written more than once", uuidcodec.ErrInvalidOutput)
	}
	s.written = true
	return s.enc.EncodeString(v)
}

func current() uuidcodec.Registry {
	return *active.Load()
}

func encodeUUID(e *msgpack.Encoder, v reflect.Value) error {
	id := v.Interface().(uuid.UUID)

	sink := &encoderSink{enc: e}
	if err := current().Serialize(id, sink); err != nil {
		return fmt.Errorf("msgpack: can't encode uuid: %w", err)
	}
	if !sink.written {
		return fmt.Errorf("msgpack: can't encode uuid: %w: nothing written for %s", uuidcodec.ErrInvalidOutput, id)
	}
	return nil
}

func decodeUUID(d *msgpack.Decoder, v reflect.Value) error {
	code, err := d.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		v.Set(reflect.ValueOf(uuid.Nil))
		return d.DecodeNil()
	}

	reg := current()
	text, err := d.DecodeString()
	if err != nil {
		err = uuidcodec.NewMalformedValueError("token", fmt.Sprintf("code=%#x", code), err)
		reg.Logger().Debug("value rejected", "format", uuidcodec.FormatMsgpack, "error", err)
		return fmt.Errorf("msgpack: can't read uuid string: %w", err)
	}

	id, err := reg.Deserialize(text, uuidcodec.Context{Format: uuidcodec.FormatMsgpack})
	if err != nil {
		return fmt.Errorf("msgpack: can't decode uuid: %w", err)
	}

	v.Set(reflect.ValueOf(id))
	return nil
}
