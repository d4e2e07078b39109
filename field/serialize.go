package field

import (
	"crypto/rand"
	"math/big"
)

// Bytes encodes x as a big-endian byte string of length x.Modulus().ByteLen(), as used by
// point encoding (spec §4.4/§6). Panics if x is Undefined.
func (x FE) Bytes() []byte {
	if x.undefined {
		panic(ErrorPrefix + "Bytes() called on Undefined field element")
	}
	buf := make([]byte, x.mod.ByteLen())
	b := x.val.ToBig().Bytes()
	copy(buf[len(buf)-len(b):], b)
	return buf
}

// SetBytes constructs a field element from a big-endian byte string interpreted modulo
// m.Int().
func SetBytes(data []byte, m *Modulus) FE {
	v := new(big.Int).SetBytes(data)
	return New(v, m)
}

// Random draws a uniformly random element of the field [0, p).
func Random(m *Modulus) FE {
	v, err := rand.Int(rand.Reader, m.Int())
	if err != nil {
		panic(ErrorPrefix + "failed to draw randomness: " + err.Error())
	}
	return New(v, m)
}
