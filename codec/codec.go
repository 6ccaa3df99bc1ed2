package codec

// Codec maps whole values to and from a wire format. UUIDs found anywhere
// inside a value go through the registry the codec was built with.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}
