package memreader

// FaultInjectingReader wraps another Reader and fails reads at a chosen
// address, or after a chosen number of successful reads. It exists to
// drive the parser's fatal-error paths the way original_source's
// unittest/test_parser.h fixture family drove the C implementation: by
// making a previously-successful byte read suddenly fail mid-parse.
type FaultInjectingReader struct {
	inner     Reader
	failAt    Addr
	failAfter int
	reads     int
	armed     bool
}

// NewFaultInjectingReader returns a reader that fails the read at failAt.
func NewFaultInjectingReader(inner Reader, failAt Addr) *FaultInjectingReader {
	return &FaultInjectingReader{inner: inner, failAt: failAt, armed: true}
}

// NewFaultAfterN returns a reader that fails starting with the (n+1)th
// read, regardless of address — useful for simulating a bus stall partway
// through a long data-tail copy.
func NewFaultAfterN(inner Reader, n int) *FaultInjectingReader {
	return &FaultInjectingReader{inner: inner, failAfter: n}
}

func (f *FaultInjectingReader) ReadU8(addr Addr) (byte, error) {
	f.reads++
	if f.armed && addr == f.failAt {
		return 0, ErrOutOfRange
	}
	if f.failAfter > 0 && f.reads > f.failAfter {
		return 0, ErrOutOfRange
	}
	return f.inner.ReadU8(addr)
}

func (f *FaultInjectingReader) Len() Addr {
	return f.inner.Len()
}
