package money

// Money holds a single int64 amount. The field is unexported, so outside
// this package the only way in is FromInt and the only way out is ToInt.
// The struct is comparable; == matches iff the wrapped integers match.
type Money struct {
	amount int64
}

// Zero returns the additive identity, equal to FromInt(0) and to the Money
// zero value.
func Zero() Money {
	return Money{}
}

// FromInt wraps n. Negative values are accepted; no validation or clamping
// is applied.
func FromInt(n int64) Money {
	return Money{amount: n}
}

// ToInt returns the exact wrapped integer.
func (m Money) ToInt() int64 {
	return m.amount
}

// Add returns the sum of the two amounts. Overflow wraps per int64.
func (m Money) Add(other Money) Money {
	return Map2(func(a, b int64) int64 { return a + b }, m, other)
}

// Subtract returns the receiver's amount minus other's.
func (m Money) Subtract(other Money) Money {
	return Map2(func(a, b int64) int64 { return a - b }, m, other)
}
