package go_chained_hash_map

// Bucket counts are always primes to spread integer-modulo hashing more
// evenly across buckets.

// nextPrime returns the smallest prime >= num.
func nextPrime(num int) int {
	if num <= 1 {
		return 2
	}
	for !isPrime(num) {
		num++
	}
	return num
}

// isPrime tests primality by trial division up to num/2.
func isPrime(num int) bool {
	for i := 2; i <= num/2; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}
