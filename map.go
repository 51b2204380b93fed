package money

// Map applies f to the wrapped integer of m and rewraps the result. The
// package does no trapping: if f panics, the panic reaches the caller.
func Map(f func(int64) int64, m Money) Money {
	return Money{amount: f(m.amount)}
}

// Map2 unwraps both amounts, applies f to the integers in argument order,
// and rewraps the result. Map3 through Map6 generalize it to higher arities.
func Map2(f func(int64, int64) int64, m1, m2 Money) Money {
	return Money{amount: f(m1.amount, m2.amount)}
}

func Map3(f func(int64, int64, int64) int64, m1, m2, m3 Money) Money {
	return Money{amount: f(m1.amount, m2.amount, m3.amount)}
}

func Map4(f func(int64, int64, int64, int64) int64, m1, m2, m3, m4 Money) Money {
	return Money{amount: f(m1.amount, m2.amount, m3.amount, m4.amount)}
}

func Map5(f func(int64, int64, int64, int64, int64) int64, m1, m2, m3, m4, m5 Money) Money {
	return Money{amount: f(m1.amount, m2.amount, m3.amount, m4.amount, m5.amount)}
}

func Map6(f func(int64, int64, int64, int64, int64, int64) int64, m1, m2, m3, m4, m5, m6 Money) Money {
	return Money{amount: f(m1.amount, m2.amount, m3.amount, m4.amount, m5.amount, m6.amount)}
}
