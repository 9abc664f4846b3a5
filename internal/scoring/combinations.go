package scoring

// combinations calls fn with every k-element index combination of 0..n-1 in
// lexicographic order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		// rightmost position that can still advance
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
