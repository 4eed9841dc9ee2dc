package common

// WipeByteArray zeroes the buffer in place. Used to scrub passwords read
// from the terminal once they have been sent to the backend.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
