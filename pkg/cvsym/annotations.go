package cvsym

// BinaryAnnotations is the compressed line and code offset annotation stream
// trailing an inline site record. The encoding is kept opaque; callers that
// interpret it can access the raw bytes.
type BinaryAnnotations struct {
	data []byte
}

// NewBinaryAnnotations wraps raw annotation bytes.
func NewBinaryAnnotations(data []byte) BinaryAnnotations {
	return BinaryAnnotations{data: data}
}

// Bytes returns the raw annotation bytes. The slice aliases the symbol
// stream and must not be modified.
func (a BinaryAnnotations) Bytes() []byte {
	return a.data
}

// Len returns the annotation stream length in bytes.
func (a BinaryAnnotations) Len() int {
	return len(a.data)
}
