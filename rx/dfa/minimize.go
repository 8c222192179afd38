package dfa

// Minimize runs Hopcroft partition refinement over d's transition function,
// producing an equivalent DFA with (at most) as many states, the sink
// renumbered back to state 0 and the (possibly merged) start state at 1.
//
// Partitions are initially grouped by accepting class (distinct classes,
// including "no class", start in distinct blocks) and then repeatedly split:
// a block B is split against a witness block A and byte c whenever some but
// not all of B's members step on c into A. Per Hopcroft's refinement, only
// the smaller half of a freshly split block needs to re-enter the worklist,
// since the larger half is already implied by whatever already queued the
// split.
func Minimize(d *DFA) *DFA {
	n := d.NumStates()
	if n <= 1 {
		return d
	}

	partition := initialPartition(d, n)
	blockOf := make([]int, n)
	reindexBlocks(partition, blockOf)

	pred := buildPredecessorIndex(d, n)

	worklist := make([]int, len(partition))
	inWork := make([]bool, len(partition))
	for i := range partition {
		worklist[i] = i
		inWork[i] = true
	}

	for len(worklist) > 0 {
		a := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		inWork[a] = false
		blockA := partition[a]

		for c := 0; c < 256; c++ {
			x := statesSteppingInto(blockA, pred[c])
			if len(x) == 0 {
				continue
			}
			touched := map[int]bool{}
			for s := range x {
				touched[blockOf[s]] = true
			}
			for y := range touched {
				partition, blockOf, worklist, inWork = splitBlock(partition, blockOf, worklist, inWork, y, x)
			}
		}
	}

	return rebuild(d, n, partition, blockOf)
}

func initialPartition(d *DFA, n int) []map[int]bool {
	groups := map[int][]int{}
	for i := 0; i < n; i++ {
		key := -1
		if c, ok := d.Class(i); ok {
			key = c
		}
		groups[key] = append(groups[key], i)
	}
	partition := make([]map[int]bool, 0, len(groups))
	for _, ids := range groups {
		blk := map[int]bool{}
		for _, id := range ids {
			blk[id] = true
		}
		partition = append(partition, blk)
	}
	return partition
}

func reindexBlocks(partition []map[int]bool, blockOf []int) {
	for bi, blk := range partition {
		for id := range blk {
			blockOf[id] = bi
		}
	}
}

func buildPredecessorIndex(d *DFA, n int) [][][]int {
	pred := make([][][]int, 256)
	for c := 0; c < 256; c++ {
		pred[c] = make([][]int, n)
	}
	for s := 0; s < n; s++ {
		for c := 0; c < 256; c++ {
			t := d.states[s].Next[c]
			pred[c][t] = append(pred[c][t], s)
		}
	}
	return pred
}

func statesSteppingInto(blockA map[int]bool, predC [][]int) map[int]bool {
	x := map[int]bool{}
	for t := range blockA {
		for _, s := range predC[t] {
			x[s] = true
		}
	}
	return x
}

// splitBlock splits partition[y] into its intersection with x and its
// difference from x, if both are non-empty, queuing the smaller half.
func splitBlock(partition []map[int]bool, blockOf []int, worklist []int, inWork []bool, y int, x map[int]bool) ([]map[int]bool, []int, []int, []bool) {
	blockY := partition[y]
	var inX, notInX []int
	for s := range blockY {
		if x[s] {
			inX = append(inX, s)
		} else {
			notInX = append(notInX, s)
		}
	}
	if len(inX) == 0 || len(notInX) == 0 {
		return partition, blockOf, worklist, inWork
	}

	blk1 := toSet(inX)
	blk2 := toSet(notInX)
	partition[y] = blk1
	partition = append(partition, blk2)
	newIdx := len(partition) - 1
	for s := range blk1 {
		blockOf[s] = y
	}
	for s := range blk2 {
		blockOf[s] = newIdx
	}
	inWork = append(inWork, false)

	if inWork[y] {
		worklist = append(worklist, newIdx)
		inWork[newIdx] = true
	} else if len(blk1) <= len(blk2) {
		worklist = append(worklist, y)
		inWork[y] = true
	} else {
		worklist = append(worklist, newIdx)
		inWork[newIdx] = true
	}
	return partition, blockOf, worklist, inWork
}

func toSet(ids []int) map[int]bool {
	s := map[int]bool{}
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// rebuild renumbers blocks so the sink's block is state 0 and the original
// start state's block is state 1, then materializes the minimized states.
func rebuild(d *DFA, n int, partition []map[int]bool, blockOf []int) *DFA {
	sinkBlock := blockOf[0]
	startBlock := blockOf[1]

	newID := make(map[int]int, len(partition))
	newID[sinkBlock] = 0
	order := []int{sinkBlock}
	if startBlock != sinkBlock {
		newID[startBlock] = 1
		order = append(order, startBlock)
	}
	// remaining blocks, in a deterministic order (lowest member state id).
	rest := make([]int, 0, len(partition))
	for bi := range partition {
		if bi == sinkBlock || bi == startBlock {
			continue
		}
		rest = append(rest, bi)
	}
	sortByMinMember(rest, partition)
	for _, bi := range rest {
		newID[bi] = len(order)
		order = append(order, bi)
	}

	states := make([]State, len(order))
	for newIdx, bi := range order {
		rep := minMember(partition[bi])
		st := State{Class: d.states[rep].Class}
		for c := 0; c < 256; c++ {
			oldNext := d.states[rep].Next[c]
			st.Next[c] = newID[blockOf[oldNext]]
		}
		states[newIdx] = st
	}
	tracer().Debugf("dfa: minimized %d states down to %d", n, len(states))
	return &DFA{states: states}
}

func minMember(blk map[int]bool) int {
	min := -1
	for id := range blk {
		if min == -1 || id < min {
			min = id
		}
	}
	return min
}

func sortByMinMember(blocks []int, partition []map[int]bool) {
	mins := make(map[int]int, len(blocks))
	for _, bi := range blocks {
		mins[bi] = minMember(partition[bi])
	}
	// insertion sort: block counts are small relative to DFA sizes of interest.
	for i := 1; i < len(blocks); i++ {
		j := i
		for j > 0 && mins[blocks[j-1]] > mins[blocks[j]] {
			blocks[j-1], blocks[j] = blocks[j], blocks[j-1]
			j--
		}
	}
}
