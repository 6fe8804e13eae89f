package word

// Pad appends the Merkle–Damgård padding used by the MD and SHA families: a
// single 0x80 byte, zeros, then the message length in bits as a field of
// lengthSize bytes (8 or 16) in the given byte order. The result is a multiple
// of blockSize bytes.
func Pad(b []byte, blockSize, lengthSize int, e Endian) []byte {
	n := len(b) + 1 + lengthSize
	padded := make([]byte, (n+blockSize-1)/blockSize*blockSize)
	copy(padded, b)
	padded[len(b)] = 0x80

	// bit length as a 128-bit quantity split in two 64-bit halves
	low := uint64(len(b)) << 3
	high := uint64(len(b)) >> 61

	field := padded[len(padded)-lengthSize:]
	for i := 0; i < lengthSize; i++ {
		v := low
		shift := uint(i) * 8
		if i >= 8 {
			v = high
			shift = uint(i-8) * 8
		}
		pos := i
		if e == Big {
			pos = lengthSize - 1 - i
		}
		field[pos] = byte(v >> shift)
	}
	return padded
}
