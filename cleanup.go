package textdiff

import (
	"strings"

	"github.com/codalotl/textdiff/internal/uni"
)

// CleanupMerge canonicalizes an edit script: empty ops are dropped, adjacent
// ops of the same kind are fused, mixed insert/delete runs have their common
// prefix and suffix peeled into the equalities on either side of the run
// (a run at the start or end of the script keeps the part that has no
// equality beside it), and single edits
// slide across an equality when the equality is a prefix or suffix of the
// edit text. The result has no empty ops, no two adjacent ops of the same
// kind, and deletes before inserts within a run.
//
// The pass is idempotent and preserves SourceText and DestinationText.
func CleanupMerge(diffs []Edit) []Edit {
	if len(diffs) == 0 {
		return nil
	}
	work := make([]Edit, len(diffs), len(diffs)+1)
	copy(work, diffs)
	work = append(work, Edit{OpEqual, ""}) // sentinel

	pointer := 0
	countDelete, countInsert := 0, 0
	textDelete, textInsert := "", ""
	for pointer < len(work) {
		switch work[pointer].Op {
		case OpInsert:
			countInsert++
			textInsert += work[pointer].Text
			pointer++
		case OpDelete:
			countDelete++
			textDelete += work[pointer].Text
			pointer++
		case OpEqual:
			run := countDelete + countInsert
			switch {
			case work[pointer].Text == "" && pointer != len(work)-1:
				// Drop an interior empty equality; the runs around it fuse.
				work = splice(work, pointer, 1)
			case run > 1 || (run == 1 && textDelete == "" && textInsert == ""):
				if countDelete != 0 && countInsert != 0 {
					// Peel the common prefix of the mixed run into the
					// preceding equality, if there is one.
					x := pointer - run
					if pre := CommonPrefix(textInsert, textDelete); pre != "" && x > 0 && work[x-1].Op == OpEqual {
						work[x-1].Text += pre
						textInsert = textInsert[len(pre):]
						textDelete = textDelete[len(pre):]
					}
					// And the common suffix into the current one, unless it
					// is the end-of-script sentinel.
					if suf := CommonSuffix(textInsert, textDelete); suf != "" && pointer != len(work)-1 {
						work[pointer].Text = suf + work[pointer].Text
						textInsert = textInsert[:len(textInsert)-len(suf)]
						textDelete = textDelete[:len(textDelete)-len(suf)]
					}
				}
				// Replace the run with at most one delete and one insert.
				merged := make([]Edit, 0, 2)
				if textDelete != "" {
					merged = append(merged, Edit{OpDelete, textDelete})
				}
				if textInsert != "" {
					merged = append(merged, Edit{OpInsert, textInsert})
				}
				start := pointer - run
				work = splice(work, start, run, merged...)
				// Reprocess the equality so it can merge into a preceding one.
				pointer = start + len(merged)
				countDelete, countInsert = 0, 0
				textDelete, textInsert = "", ""
			case pointer != 0 && work[pointer-1].Op == OpEqual:
				// Merge this equality with the previous one.
				work[pointer-1].Text += work[pointer].Text
				work = splice(work, pointer, 1)
				countDelete, countInsert = 0, 0
				textDelete, textInsert = "", ""
			default:
				pointer++
				countDelete, countInsert = 0, 0
				textDelete, textInsert = "", ""
			}
		}
	}
	if work[len(work)-1].Text == "" {
		work = work[:len(work)-1] // remove the sentinel
	}

	// Second pass: single edits surrounded on both sides by equalities can
	// shift sideways to eliminate an equality.
	// e.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
	changes := false
	for pointer := 1; pointer < len(work)-1; pointer++ {
		prev, next := work[pointer-1], work[pointer+1]
		if prev.Op != OpEqual || next.Op != OpEqual {
			continue
		}
		cur := work[pointer].Text
		if strings.HasSuffix(cur, prev.Text) {
			// Slide the edit left over the previous equality.
			work[pointer].Text = prev.Text + cur[:len(cur)-len(prev.Text)]
			work[pointer+1].Text = prev.Text + next.Text
			work = splice(work, pointer-1, 1)
			changes = true
		} else if strings.HasPrefix(cur, next.Text) {
			// Slide the edit right over the next equality.
			work[pointer-1].Text = prev.Text + next.Text
			work[pointer].Text = cur[len(next.Text):] + next.Text
			work = splice(work, pointer+1, 1)
			changes = true
		}
	}

	// A shift can expose further merges.
	if changes {
		return CleanupMerge(work)
	}
	return work
}

// CleanupSemantic reduces a script to semantically meaningful edits. It is
// currently the identity transform.
//
// TODO: port a real semantic pass (short-equality elimination driven by
// edit surroundings rather than a fixed cost).
func CleanupSemantic(diffs []Edit) []Edit {
	return diffs
}

// CleanupEfficiency is CleanupEfficiencyCost with DefaultEditCost.
func CleanupEfficiency(diffs []Edit) []Edit {
	return CleanupEfficiencyCost(diffs, DefaultEditCost)
}

// CleanupEfficiencyCost splits equalities that are more expensive to keep
// than to re-edit, given that an edit operation carries a fixed overhead of
// editCost codepoints. An equality flanked by edits on both sides splits
// when shorter than editCost; with a second edit before it, also when
// shorter than editCost/2+1. Splitting replaces the equality with a
// delete/insert pair of the same text, which then fuses with its neighbors.
func CleanupEfficiencyCost(diffs []Edit, editCost int) []Edit {
	if len(diffs) == 0 {
		return nil
	}
	out := make([]Edit, 0, len(diffs))
	changed := false
	for i, d := range diffs {
		if d.Op == OpEqual && len(out) > 0 && i+1 < len(diffs) &&
			out[len(out)-1].Op != OpEqual && diffs[i+1].Op != OpEqual {
			split := uni.SmallerThan(d.Text, editCost)
			if !split && len(out) >= 2 && out[len(out)-2].Op != OpEqual {
				split = uni.SmallerThan(d.Text, editCost/2+1)
			}
			if split {
				out = append(out, Edit{OpDelete, d.Text}, Edit{OpInsert, d.Text})
				changed = true
				continue
			}
		}
		out = append(out, d)
	}
	if changed {
		return CleanupMerge(out)
	}
	return out
}

// splice removes count ops at start and inserts items in their place.
func splice(s []Edit, start, count int, items ...Edit) []Edit {
	tail := append(append([]Edit{}, items...), s[start+count:]...)
	return append(s[:start], tail...)
}
