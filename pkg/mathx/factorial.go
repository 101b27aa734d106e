package mathx

// Factorial returns n! for n >= 0, with Factorial(0) == 1.
// For negative n it returns 1 — a deliberate boundary policy rather
// than the mathematical definition, kept for callers that treat any
// out-of-domain input as the empty product.
func Factorial(n int) int {
	if n <= 0 {
		return 1
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}
