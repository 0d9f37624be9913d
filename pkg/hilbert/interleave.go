package hilbert

import "fmt"

// InterleaveBits packs a transpose into a single Hilbert index. dims*bits
// must not exceed 64.
func InterleaveBits(t Transpose, bits uint) (uint64, error) {
	n := len(t)
	if err := checkShape(n, bits); err != nil {
		return 0, err
	}
	if err := checkCode(n, bits); err != nil {
		return 0, err
	}
	if err := checkValues(t, bits); err != nil {
		return 0, err
	}

	// spread each element so its bits sit n apart
	var acc [MaxDims]uint64
	step := uint(n - 1)
	andbit := uint64(1)
	for i, k := uint(0), uint(0); k < bits; i, k = i+step, k+1 {
		for j := 0; j < n; j++ {
			acc[j] |= (uint64(t[j]) & andbit) << i
		}
		andbit <<= 1
	}

	res := acc[0] << (n - 1)
	for j := 1; j < n; j++ {
		res |= acc[j] << (n - 1 - j)
	}
	return res, nil
}

// UninterleaveBits is the inverse of InterleaveBits. It overwrites every
// element of t with the transpose of code.
func UninterleaveBits(t Transpose, bits uint, code uint64) error {
	n := len(t)
	if err := checkShape(n, bits); err != nil {
		return err
	}
	if err := checkCode(n, bits); err != nil {
		return err
	}
	if total := uint(n) * bits; total < CodeBits && code>>total != 0 {
		return fmt.Errorf("%w: code=%d dims=%d bits=%d", ErrCodeRange, code, n, bits)
	}

	for i := range t {
		t[i] = 0
	}
	// one plane past bits; it is always empty for an in-range code
	for k := uint(0); k <= bits; k++ {
		shiftSelector := uint(n) * k
		shiftBack := uint(n-1) * k
		for j := 0; j < n; j++ {
			sel := uint64(1) << (shiftSelector + uint(j))
			t[n-1-j] |= uint32((code & sel) >> (shiftBack + uint(j)))
		}
	}
	return nil
}
