package uuidcodec

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	uuidPtrType = reflect.PointerTo(uuidType)
)

type (
	uuidExtension struct {
		jsoniter.DummyExtension
		reg defaultRegistry
	}

	uuidEncoder struct {
		reg defaultRegistry
	}

	uuidDecoder struct {
		reg defaultRegistry
	}

	// *uuid.UUID satisfies encoding.TextMarshaler, so json-iterator would
	// otherwise pick its marshaler path for pointers and skip the registry.
	uuidPtrEncoder struct {
		elem uuidEncoder
	}

	uuidPtrDecoder struct {
		elem uuidDecoder
	}

	// streamSink writes into a json-iterator stream. Only one write is allowed
	// so that the output stays a single JSON value.
	streamSink struct {
		stream  *jsoniter.Stream
		written bool
	}
)

func (s *streamSink) WriteString(v string) error {
	if s.written {
		return fmt.Errorf("%w: value written more than once", ErrInvalidOutput)
	}
	s.written = true
	s.stream.WriteString(v)
	return nil
}

func (e *uuidExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ.Type1() {
	case uuidType:
		return &uuidEncoder{reg: e.reg}
	case uuidPtrType:
		return &uuidPtrEncoder{elem: uuidEncoder{reg: e.reg}}
	}
	return nil
}

func (e *uuidExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	switch typ.Type1() {
	case uuidType:
		return &uuidDecoder{reg: e.reg}
	case uuidPtrType:
		return &uuidPtrDecoder{elem: uuidDecoder{reg: e.reg}}
	}
	return nil
}

// Map keys are matched on the value type only.
func (e *uuidExtension) CreateMapKeyEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() != uuidType {
		return nil
	}
	return &uuidEncoder{reg: e.reg}
}

func (e *uuidExtension) CreateMapKeyDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() != uuidType {
		return nil
	}
	return &uuidDecoder{reg: e.reg}
}

func (enc *uuidEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*uuid.UUID)(ptr) == uuid.Nil
}

func (enc *uuidEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	if err := enc.reg.serialize(*(*uuid.UUID)(ptr), stream); err != nil && stream.Error == nil {
		stream.Error = err
	}
}

func (dec *uuidDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		*(*uuid.UUID)(ptr) = uuid.Nil
		return
	case jsoniter.StringValue:
	default:
		raw := string(iter.SkipAndReturnBytes())
		setIterError(iter, dec.reg.reject(NewMalformedValueError("token", raw, errNotString), FormatJSON))
		return
	}

	text := iter.ReadString()
	if iter.Error != nil {
		return
	}

	u, err := dec.reg.Deserialize(text, Context{Format: FormatJSON})
	if err != nil {
		setIterError(iter, err)
		return
	}
	*(*uuid.UUID)(ptr) = u
}

func (enc *uuidPtrEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(**uuid.UUID)(ptr) == nil
}

func (enc *uuidPtrEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	p := *(**uuid.UUID)(ptr)
	if p == nil {
		stream.WriteNil()
		return
	}
	enc.elem.Encode(unsafe.Pointer(p), stream)
}

func (dec *uuidPtrDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		*(**uuid.UUID)(ptr) = nil
		return
	}

	u := new(uuid.UUID)
	dec.elem.Decode(unsafe.Pointer(u), iter)
	if iter.Error == nil {
		*(**uuid.UUID)(ptr) = u
	}
}

func setIterError(iter *jsoniter.Iterator, err error) {
	if iter.Error == nil {
		iter.Error = err
	}
}
