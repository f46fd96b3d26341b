package outs

// FourAndTwo converts outs into a rough completion percentage with the
// "rule of 4 and 2": outs*4 when all-in from the turn onward, outs*2
// otherwise. Negative outs give 0.
func FourAndTwo(allIn bool, communitySize, outs int) int {
	if outs < 0 {
		return 0
	}
	if communitySize >= 4 && allIn {
		return outs * 4
	}
	return outs * 2
}

// CompletionProbability is FourAndTwo over an Outcome. Unreachable ranks are 0%.
func CompletionProbability(allIn bool, communitySize int, o Outcome) int {
	return FourAndTwo(allIn, communitySize, o.Int())
}
