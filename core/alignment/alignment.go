// core/alignment/alignment.go
package alignment

import "errors"

var (
	// ErrEmpty indicates the input contained no sequence records.
	ErrEmpty = errors.New("alignment: no sequences in input")
	// ErrRagged indicates the records are not all the same length.
	ErrRagged = errors.New("alignment: sequences differ in length (input must be aligned)")
	// ErrTooFew indicates fewer than two sequences, so no site can segregate.
	ErrTooFew = errors.New("alignment: at least two sequences are required")
)

// Record is one aligned sequence. Immutable once read.
type Record struct {
	ID  string
	Seq []byte
}

// Alignment is an ordered set of equal-length records.
type Alignment struct {
	Records []Record
}

// Len returns the number of sequences.
func (a *Alignment) Len() int { return len(a.Records) }

// Width returns the alignment length (0 when empty).
func (a *Alignment) Width() int {
	if len(a.Records) == 0 {
		return 0
	}
	return len(a.Records[0].Seq)
}

// Labels returns the record IDs in input order.
func (a *Alignment) Labels() []string {
	out := make([]string, len(a.Records))
	for i, r := range a.Records {
		out[i] = r.ID
	}
	return out
}

// Validate checks the invariants required by downstream stages.
func (a *Alignment) Validate() error {
	if len(a.Records) == 0 {
		return ErrEmpty
	}
	if len(a.Records) < 2 {
		return ErrTooFew
	}
	w := len(a.Records[0].Seq)
	for _, r := range a.Records[1:] {
		if len(r.Seq) != w {
			return ErrRagged
		}
	}
	return nil
}
