package heredity

import "errors"

// ErrMalformedRecord indicates that an evidence record set is structurally
// unusable: a parent reference that names nobody in the set, a record naming
// only one parent, or two records for the same person. No Pedigree is built.
var ErrMalformedRecord = errors.New("heredity: malformed record")

// ErrCyclicAncestry indicates that the parent relation contains a cycle, i.e.
// some person is their own ancestor.
var ErrCyclicAncestry = errors.New("heredity: cyclic ancestry")

// ErrImpossibleEvidence indicates that some person's accumulated probability
// mass was zero at normalization time. The standard model cannot produce this
// (the prior is strictly positive everywhere); it is detected defensively so
// that a degenerate Tables value surfaces an error rather than NaN.
var ErrImpossibleEvidence = errors.New("heredity: evidence admits no consistent assignment")
