package hilbert

// AxesToTranspose converts axes in place into Hilbert transpose form and
// returns the same backing array as a Transpose. The caller must not use
// axes afterwards.
//
// Example: bits=5 for each of 3 coordinates. The 15-bit Hilbert integer
// ABCDEFGHIJKLMNO is stored as its transpose:
//
//	t[0] = A D G J M
//	t[1] = B E H K N
//	t[2] = C F I L O
//	       high  low
func AxesToTranspose(axes Axes, bits uint) (Transpose, error) {
	n := len(axes)
	if err := checkShape(n, bits); err != nil {
		return nil, err
	}
	if err := checkValues(axes, bits); err != nil {
		return nil, err
	}
	x := axes
	m := uint32(1) << (bits - 1)

	// inverse undo
	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < n; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}

	// gray encode
	for i := 1; i < n; i++ {
		x[i] ^= x[i-1]
	}
	var t uint32
	for q := m; q > 1; q >>= 1 {
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}
	return Transpose(x), nil
}

// TransposeToAxes is the inverse of AxesToTranspose. It converts t in place
// and returns the same backing array as Axes.
func TransposeToAxes(t Transpose, bits uint) (Axes, error) {
	n := len(t)
	if err := checkShape(n, bits); err != nil {
		return nil, err
	}
	if err := checkValues(t, bits); err != nil {
		return nil, err
	}
	x := t

	// gray decode; must run high to low
	g := x[n-1] >> 1
	for i := n - 1; i > 0; i-- {
		x[i] ^= x[i-1]
	}
	x[0] ^= g

	// undo excess work. Computed in 64 bits so bits=32 terminates.
	end := uint64(1) << bits
	for q64 := uint64(2); q64 < end; q64 <<= 1 {
		q := uint32(q64)
		p := q - 1
		for i := n - 1; i >= 0; i-- {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				s := (x[0] ^ x[i]) & p
				x[0] ^= s
				x[i] ^= s
			}
		}
	}
	return Axes(x), nil
}
