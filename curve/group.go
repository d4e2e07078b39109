package curve

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/points"
)

// Group is the cyclic subgroup of an EllipticCurve generated by a distinguished point (spec
// §3's AbelianGroup): the data a ScalarMultiplier needs beyond the curve itself.
type Group struct {
	Curve     *EllipticCurve
	Generator points.Point
	Order     *big.Int
	Cofactor  *big.Int
}

// NewGroup constructs a Group, enforcing that Generator is an affine point on Curve (spec §3).
func NewGroup(c *EllipticCurve, generator points.Point, order, cofactor *big.Int) (*Group, error) {
	if err := c.checkAffine(generator); err != nil {
		return nil, err
	}
	onCurve, err := c.IsOnCurve(generator)
	if err != nil {
		return nil, err
	}
	if !onCurve {
		return nil, ErrNotOnCurve
	}
	return &Group{Curve: c, Generator: generator, Order: order, Cofactor: cofactor}, nil
}
