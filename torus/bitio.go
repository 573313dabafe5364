package torus

import "io"

// bitWriter appends single bits, filling each byte from its least
// significant bit.
type bitWriter struct {
	buf []byte
	n   int
}

func newBitWriter(bits int) *bitWriter { return &bitWriter{buf: make([]byte, 0, (bits+7)/8)} }

func (w *bitWriter) writeBool(b bool) {
	if w.n%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b {
		w.buf[len(w.buf)-1] |= 1 << (w.n % 8)
	}
	w.n++
}

// bytes returns the packed bits. The last byte is zero padded.
func (w *bitWriter) bytes() []byte { return w.buf }

type bitReader struct {
	data []byte
	pos  int
}

func newBitReader(b []byte) *bitReader { return &bitReader{data: b} }

func (r *bitReader) readBool() (bool, error) {
	if r.pos/8 >= len(r.data) {
		return false, io.ErrUnexpectedEOF
	}
	v := r.data[r.pos/8]>>(r.pos%8)&1 == 1
	r.pos++
	return v, nil
}
