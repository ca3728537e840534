package listlayout

import "sort"

// Changes computes the batch that turns a list keyed by oldKeys into one
// keyed by newKeys. Keys present in both lists keep their row; the ones
// whose relative order changed are moved. Deletes come back in descending
// old order, then moves, then inserts in ascending new order. Duplicate keys
// are matched by their last occurrence.
func Changes(oldKeys, newKeys []string) []Update {
	oldIndex := make(map[string]int, len(oldKeys))
	for i, k := range oldKeys {
		oldIndex[k] = i
	}
	newIndex := make(map[string]int, len(newKeys))
	for i, k := range newKeys {
		newIndex[k] = i
	}

	var deletes, moves, inserts []Update

	// Targets of the surviving rows, in old order.
	var survivors []int
	var survivorsOld []int
	for i, k := range oldKeys {
		if oldIndex[k] != i {
			deletes = append(deletes, DeleteAt(i))
			continue
		}
		j, ok := newIndex[k]
		if !ok {
			deletes = append(deletes, DeleteAt(i))
			continue
		}
		survivors = append(survivors, j)
		survivorsOld = append(survivorsOld, i)
	}

	stable := longestIncreasing(survivors)
	for n, j := range survivors {
		if _, ok := stable[n]; !ok {
			moves = append(moves, MoveFrom(survivorsOld[n], j))
		}
	}

	for j, k := range newKeys {
		if _, ok := oldIndex[k]; !ok || newIndex[k] != j {
			inserts = append(inserts, InsertAt(j))
		}
	}

	sort.Slice(deletes, func(a, b int) bool { return deletes[a].Before > deletes[b].Before })

	updates := make([]Update, 0, len(deletes)+len(moves)+len(inserts))
	updates = append(updates, deletes...)
	updates = append(updates, moves...)
	return append(updates, inserts...)
}

// longestIncreasing returns the positions in seq that form one of its
// longest strictly increasing subsequences.
func longestIncreasing(seq []int) map[int]struct{} {
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		n := sort.Search(len(tails), func(k int) bool { return seq[tails[k]] >= v })
		if n > 0 {
			prev[i] = tails[n-1]
		} else {
			prev[i] = -1
		}
		if n == len(tails) {
			tails = append(tails, i)
		} else {
			tails[n] = i
		}
	}

	out := make(map[int]struct{}, len(tails))
	if len(tails) == 0 {
		return out
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		out[i] = struct{}{}
	}
	return out
}
