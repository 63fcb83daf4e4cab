package structures

// IntMul is the multiplicative monoid of int64 (wrapping on overflow).
type IntMul struct{}

func (IntMul) Mul(a, b int64) int64  { return a * b }
func (IntMul) Equal(a, b int64) bool { return a == b }
func (IntMul) One() int64            { return 1 }

// IntAdd is the additive group of int64 written multiplicatively: Mul is
// addition, One is 0 and Inv is negation.
type IntAdd struct{}

func (IntAdd) Mul(a, b int64) int64  { return a + b }
func (IntAdd) Equal(a, b int64) bool { return a == b }
func (IntAdd) One() int64            { return 0 }
func (IntAdd) Inv(a int64) int64     { return -a }

// IntRing is the ring of int64 with wrapping arithmetic.
type IntRing struct{}

func (IntRing) Mul(a, b int64) int64  { return a * b }
func (IntRing) Equal(a, b int64) bool { return a == b }
func (IntRing) One() int64            { return 1 }
func (IntRing) Add(a, b int64) int64  { return a + b }
func (IntRing) Zero() int64           { return 0 }
func (IntRing) Neg(a int64) int64     { return -a }
