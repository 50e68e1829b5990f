package strz

import (
	"math/bits"

	"github.com/coregx/strz/internal/conv"
	"github.com/coregx/strz/internal/dprow"
)

const wordSize = bits.UintSize / 8

// LevenshteinMemoryLen returns the scratch size, in bytes, that Levenshtein
// needs for operands of length la and lb: 2*(lb+1)*cellSize, where cellSize
// is 1 byte when both la and lb are below 256, else the machine word size —
// see conv.FitsUint8Cells for the exact dispatch predicate.
func LevenshteinMemoryLen(la, lb int) int {
	cellSize := wordSize
	if conv.FitsUint8Cells(la, lb) {
		cellSize = 1
	}
	return 2 * (lb + 1) * cellSize
}

// EditScratch is the reusable row pair Levenshtein operates on. Allocate one
// with NewEditScratch sized for the specific (la, lb) pair you intend to
// call Levenshtein with; a scratch built for a larger pair may be reused for
// any smaller one.
type EditScratch struct {
	narrow dprow.Uint8Rows
	wide   dprow.WordRows
	isWide bool
}

// NewEditScratch allocates an EditScratch for operands of length la and lb.
func NewEditScratch(la, lb int) EditScratch {
	width := lb + 1
	if conv.FitsUint8Cells(la, lb) {
		return EditScratch{narrow: dprow.NewUint8Rows(width)}
	}
	return EditScratch{wide: dprow.NewWordRows(width), isWide: true}
}

// Levenshtein computes the bounded edit distance between a and b: the
// minimum number of single-byte insertions, deletions, and substitutions
// needed to turn a into b, capped at bound.
//
// scratch must come from NewEditScratch(len(a), len(b)) (or a scratch built
// for operands at least that large); its contents on return are
// unspecified.
//
// The classic Wagner-Fischer recurrence is evaluated with two rolling rows
// instead of a full matrix: prev holds the previous row, curr the one being
// filled; curr[j+1] = min(prev[j+1]+1, curr[j]+1, prev[j]+(a[i]!=b[j])).
// Cells are clamped to bound. After each row the running minimum of curr is
// checked against bound and the function returns bound immediately once it
// has reached bound —
// the distance can only grow from there, so there is no reason to keep
// filling rows for the usual fuzzy-matching case where callers only care
// whether two strings are within some small distance of each other.
//
// Pre-checks: an empty operand returns the other operand's length, clamped
// to bound; bound == 0 is checked first and returns 0 without looking at
// the operands, since min(distance, 0) is always 0; inputs
// whose length difference alone exceeds bound return bound without running
// the DP (no edit sequence shorter than |len(a)-len(b)| exists).
func Levenshtein(a, b []byte, scratch EditScratch, bound int) int {
	la, lb := len(a), len(b)

	if bound == 0 {
		// min(trueDistance, 0) is always 0 since distance is never
		// negative — skip the DP rows entirely for this degenerate bound.
		return 0
	}
	if la == 0 {
		return clampInt(lb, bound)
	}
	if lb == 0 {
		return clampInt(la, bound)
	}
	if abs(la-lb) > bound {
		return bound
	}

	if scratch.isWide {
		return levenshteinWide(a, b, scratch.wide, bound)
	}
	return levenshteinNarrow(a, b, scratch.narrow, bound)
}

func levenshteinNarrow(a, b []byte, rows dprow.Uint8Rows, bound int) int {
	la, lb := len(a), len(b)
	for j := 0; j <= lb; j++ {
		rows.Prev[j] = conv.IntToUint8(minInt(j, bound))
	}

	for i := 0; i < la; i++ {
		rows.Curr[0] = conv.IntToUint8(minInt(i+1, bound))
		rowMin := int(rows.Curr[0])
		for j := 0; j < lb; j++ {
			cost := 0
			if a[i] != b[j] {
				cost = 1
			}
			v := minInt(minInt(int(rows.Prev[j+1])+1, int(rows.Curr[j])+1), int(rows.Prev[j])+cost)
			if v > bound {
				v = bound
			}
			rows.Curr[j+1] = conv.IntToUint8(v)
			if v < rowMin {
				rowMin = v
			}
		}
		if rowMin >= bound {
			return bound
		}
		rows.Swap()
	}
	return minInt(int(rows.Prev[lb]), bound)
}

func levenshteinWide(a, b []byte, rows dprow.WordRows, bound int) int {
	la, lb := len(a), len(b)
	for j := 0; j <= lb; j++ {
		rows.Prev[j] = minInt(j, bound)
	}

	for i := 0; i < la; i++ {
		rows.Curr[0] = minInt(i+1, bound)
		rowMin := rows.Curr[0]
		for j := 0; j < lb; j++ {
			cost := 0
			if a[i] != b[j] {
				cost = 1
			}
			v := minInt(minInt(rows.Prev[j+1]+1, rows.Curr[j]+1), rows.Prev[j]+cost)
			if v > bound {
				v = bound
			}
			rows.Curr[j+1] = v
			if v < rowMin {
				rowMin = v
			}
		}
		if rowMin >= bound {
			return bound
		}
		rows.Swap()
	}
	return minInt(rows.Prev[lb], bound)
}

// SubstitutionMatrix is a flat 256x256 row-major table of substitution
// costs: At(x, y) is the cost of aligning byte x against byte y, indexed as
// unsigned bytes. Used only by AlignmentScore.
type SubstitutionMatrix [65536]int8

// At returns the substitution cost of aligning x against y.
func (m *SubstitutionMatrix) At(x, y byte) int8 {
	return m[int(x)*256+int(y)]
}

// Set assigns the substitution cost of aligning x against y.
func (m *SubstitutionMatrix) Set(x, y byte, cost int8) {
	m[int(x)*256+int(y)] = cost
}

// AlignmentScoreMemoryLen returns the scratch size, in bytes, that
// AlignmentScore needs for an operand-b length of lb:
// 2*(lb+1)*sizeof(signed machine word).
func AlignmentScoreMemoryLen(lb int) int {
	return 2 * (lb + 1) * wordSize
}

// AlignScratch is the reusable row pair AlignmentScore operates on.
type AlignScratch struct {
	rows dprow.WordRows
}

// NewAlignScratch allocates an AlignScratch for an operand-b length of lb.
func NewAlignScratch(lb int) AlignScratch {
	return AlignScratch{rows: dprow.NewWordRows(lb + 1)}
}

// AlignmentScore computes a Needleman-Wunsch-style weighted alignment score
// between a and b under a per-gap penalty and a 256x256 substitution matrix.
//
// Unlike Levenshtein there is no bound: substitution costs and the gap
// penalty may be negative, so the running score is not monotone and cannot
// be early-exited. scratch must come from NewAlignScratch(len(b)) (or
// larger); its contents on return are unspecified.
//
// Recurrence: curr[j+1] = min(prev[j+1]+gap, curr[j]+gap, prev[j]+subs.At(a[i],b[j])).
//
// Edge cases preserve the source algorithm's literal behavior rather than
// the "obvious" one: an empty a returns len(b), and an empty b returns
// len(a) — NOT len(b)*gap / len(a)*gap. The first DP row is seeded with
// unweighted column indices (0, 1, 2, ...), not gap-weighted ones; this
// spec intentionally preserves that behavior rather than "fixing" it. See
// the AlignmentScore empty-operand entry in DESIGN.md.
func AlignmentScore(a, b []byte, gap int, subs *SubstitutionMatrix, scratch AlignScratch) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	rows := scratch.rows
	for j := 0; j <= lb; j++ {
		rows.Prev[j] = j
	}

	for i := 0; i < la; i++ {
		rows.Curr[0] = i + 1
		for j := 0; j < lb; j++ {
			sub := rows.Prev[j] + int(subs.At(a[i], b[j]))
			del := rows.Prev[j+1] + gap
			ins := rows.Curr[j] + gap
			rows.Curr[j+1] = minInt(minInt(del, ins), sub)
		}
		rows.Swap()
	}
	return rows.Prev[lb]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, bound int) int {
	return minInt(v, bound)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
