// Package field implements prime-field arithmetic for the scalar-multiplication engine.
//
// A field element (FE) is immutable: every arithmetic operation returns a fresh value rather
// than mutating the receiver. Elements carry their modulus; binary operations between
// elements of differing moduli fail with ErrModulusMismatch. The distinguished Undefined
// value is a typed bottom used for the point-at-infinity's coordinates (spec §9): every
// operation on it fails with ErrUndefinedOp and it compares unequal to everything, including
// itself.
//
// The underlying representation is github.com/holiman/uint256.Int, a fixed 4-word (256-bit)
// unsigned integer with native modulus-bounded Add/Mul (the same type go-ethereum's EVM uses
// for its own modular arithmetic opcodes). All curves this engine targets fit comfortably in
// 256 bits.
package field

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Modulus is a prime modulus shared by a family of field elements. Two elements may only
// interact if their moduli are numerically equal; they need not share the same *Modulus.
type Modulus struct {
	p       uint256.Int
	byteLen int
}

// NewModulus wraps p as a Modulus. It does not itself verify primality; callers that need
// that guarantee should call MillerRabin on the result of p.Uint64()/big.Int form, or rely on
// a trusted curve-parameter loader (spec §6).
func NewModulus(p *big.Int) *Modulus {
	if p.Sign() <= 0 {
		panic(ErrorPrefix + "modulus must be positive")
	}
	var m Modulus
	if overflow := m.p.SetFromBig(p); overflow {
		panic(ErrorPrefix + "modulus does not fit in 256 bits")
	}
	m.byteLen = (p.BitLen() + 7) / 8
	if m.byteLen == 0 {
		m.byteLen = 1
	}
	return &m
}

// Int returns the modulus as a big.Int.
func (m *Modulus) Int() *big.Int {
	return m.p.ToBig()
}

// ByteLen is ⌈bit_length(p)/8⌉, the coordinate byte length used by point encoding (§4.5/§6).
func (m *Modulus) ByteLen() int {
	return m.byteLen
}

func (m *Modulus) BitLen() int {
	return m.p.BitLen()
}

func (m *Modulus) equal(other *Modulus) bool {
	return m == other || m.p.Eq(&other.p)
}

// FE is a prime-field element, or the Undefined sentinel.
type FE struct {
	mod       *Modulus
	val       uint256.Int
	undefined bool
}

// Undefined returns the typed-bottom field element for modulus m.
func Undefined(m *Modulus) FE {
	return FE{mod: m, undefined: true}
}

// IsUndefined reports whether x is the Undefined sentinel.
func (x FE) IsUndefined() bool {
	return x.undefined
}

// New constructs the field element v mod m.Int(), reducing v into range.
func New(v *big.Int, m *Modulus) FE {
	reduced := new(big.Int).Mod(v, m.Int())
	var u uint256.Int
	u.SetFromBig(reduced)
	return FE{mod: m, val: u}
}

// NewUint64 constructs the field element v mod m.Int().
func NewUint64(v uint64, m *Modulus) FE {
	var u uint256.Int
	u.SetUint64(v)
	u.Mod(&u, &m.p)
	return FE{mod: m, val: u}
}

// Modulus returns x's modulus. An Undefined element reports the modulus it was created with
// (nil for Undefined(nil)).
func (x FE) Modulus() *Modulus {
	return x.mod
}

// Int returns x's value as a big.Int. Panics if x is Undefined.
func (x FE) Int() *big.Int {
	if x.undefined {
		panic(ErrorPrefix + "Int() called on Undefined field element")
	}
	return x.val.ToBig()
}

func (x FE) mustMatch(y FE) error {
	if x.undefined || y.undefined {
		return ErrUndefinedOp
	}
	if !x.mod.equal(y.mod) {
		return ErrModulusMismatch
	}
	return nil
}

// Add returns x+y mod p.
func (x FE) Add(y FE) (FE, error) {
	if err := x.mustMatch(y); err != nil {
		return FE{}, err
	}
	var z uint256.Int
	z.AddMod(&x.val, &y.val, &x.mod.p)
	return FE{mod: x.mod, val: z}, nil
}

// Sub returns x-y mod p.
func (x FE) Sub(y FE) (FE, error) {
	if err := x.mustMatch(y); err != nil {
		return FE{}, err
	}
	var negY uint256.Int
	negY.Sub(&x.mod.p, &y.val)
	negY.Mod(&negY, &x.mod.p)
	var z uint256.Int
	z.AddMod(&x.val, &negY, &x.mod.p)
	return FE{mod: x.mod, val: z}, nil
}

// Mul returns x*y mod p.
func (x FE) Mul(y FE) (FE, error) {
	if err := x.mustMatch(y); err != nil {
		return FE{}, err
	}
	var z uint256.Int
	z.MulMod(&x.val, &y.val, &x.mod.p)
	return FE{mod: x.mod, val: z}, nil
}

// Neg returns -x mod p.
func (x FE) Neg() (FE, error) {
	if x.undefined {
		return FE{}, ErrUndefinedOp
	}
	var z uint256.Int
	z.Sub(&x.mod.p, &x.val)
	z.Mod(&z, &x.mod.p)
	return FE{mod: x.mod, val: z}, nil
}

// IsZero reports whether x is the additive identity. Panics if x is Undefined.
func (x FE) IsZero() bool {
	if x.undefined {
		panic(ErrorPrefix + "IsZero() called on Undefined field element")
	}
	return x.val.IsZero()
}

// Equal reports bit-for-bit equality of value and numeric equality of modulus. Undefined is never equal
// to anything, including another Undefined (spec §9).
func (x FE) Equal(y FE) bool {
	if x.undefined || y.undefined {
		return false
	}
	return x.mod.equal(y.mod) && x.val.Eq(&y.val)
}

// Inverse returns x^-1 mod p via the extended Euclidean algorithm. Fails with
// ErrNotInvertible if gcd(x,p) != 1 (i.e. x == 0, since p is prime).
func (x FE) Inverse() (FE, error) {
	if x.undefined {
		return FE{}, ErrUndefinedOp
	}
	g, _, v := extgcd(x.mod.Int(), x.val.ToBig())
	if g.Cmp(big.NewInt(1)) != 0 {
		return FE{}, ErrNotInvertible
	}
	return New(v, x.mod), nil
}

// Div returns x/y mod p. Fails with ErrNotInvertible if y is not invertible.
func (x FE) Div(y FE) (FE, error) {
	if err := x.mustMatch(y); err != nil {
		return FE{}, err
	}
	inv, err := y.Inverse()
	if err != nil {
		return FE{}, err
	}
	return x.Mul(inv)
}

// Pow returns x^e mod p via square-and-multiply. A negative e inverts x first.
func (x FE) Pow(e *big.Int) (FE, error) {
	if x.undefined {
		return FE{}, ErrUndefinedOp
	}
	base := x
	if e.Sign() < 0 {
		var err error
		base, err = base.Inverse()
		if err != nil {
			return FE{}, err
		}
		e = new(big.Int).Neg(e)
	}
	result := NewUint64(1, x.mod)
	bit := new(big.Int).Set(e)
	cur := base
	for bit.Sign() > 0 {
		if bit.Bit(0) == 1 {
			var err error
			result, err = result.Mul(cur)
			if err != nil {
				return FE{}, err
			}
		}
		var err error
		cur, err = cur.Mul(cur)
		if err != nil {
			return FE{}, err
		}
		bit.Rsh(bit, 1)
	}
	return result, nil
}

// extgcd returns (g, a, b) such that a*x + b*y == g == gcd(x,y), with x,y >= 0.
func extgcd(x, y *big.Int) (g, a, b *big.Int) {
	old_r, r := new(big.Int).Set(x), new(big.Int).Set(y)
	old_s, s := big.NewInt(1), big.NewInt(0)
	old_t, t := big.NewInt(0), big.NewInt(1)
	for r.Sign() != 0 {
		q := new(big.Int).Div(old_r, r)
		old_r, r = r, new(big.Int).Sub(old_r, new(big.Int).Mul(q, r))
		old_s, s = s, new(big.Int).Sub(old_s, new(big.Int).Mul(q, s))
		old_t, t = t, new(big.Int).Sub(old_t, new(big.Int).Mul(q, t))
	}
	return old_r, old_s, old_t
}

// String renders x in decimal, or "Undefined".
func (x FE) String() string {
	if x.undefined {
		return "Undefined"
	}
	return x.val.ToBig().String()
}
