// core/dna/complement.go
package dna

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'; complement['T'] = 'A'; complement['C'] = 'G'; complement['G'] = 'C'
	complement['a'] = 'T'; complement['t'] = 'A'; complement['c'] = 'G'; complement['g'] = 'C'
	complement['N'] = 'N'; complement['n'] = 'N'
}

// Complement returns the Watson-Crick partner of b (case-insensitive, result
// uppercase). Bytes outside A/C/G/T/N are returned unchanged.
func Complement(b byte) byte { return complement[b] }

// Reverse returns a reversed copy of seq.
func Reverse(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = seq[n-1-i]
	}
	return out
}

// ReverseComplement returns the reverse complement of seq as a new slice.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
