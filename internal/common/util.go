package common

// WipeByteArray overwrites b with zeros. It is used on password buffers read
// from the terminal once they have been copied into the user store.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
