package spline

import "fmt"

// MaxFactorial is the largest k for which [Factorial] is finite. 171! exceeds
// the range of a float64.
const MaxFactorial = 170

// Factorial returns k! for non-negative k. Results are exact up to 22! and
// rounded beyond that. For k > [MaxFactorial] the result is +Inf.
func Factorial(k int) float64 {
	if k < 0 {
		panic(fmt.Sprintf("factorial of negative number %d", k))
	}
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// Binomial returns the binomial coefficient C(n, i) = n! / (i! (n-i)!), or 0 if
// i is outside of [0, n].
func Binomial(n, i int) float64 {
	if i < 0 || i > n {
		return 0
	}
	return Factorial(n) / (Factorial(i) * Factorial(n-i))
}
