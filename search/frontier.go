package search

// entry is one frontier element. seq is the insertion sequence number and
// breaks ties between equal keys, oldest first.
type entry struct {
	key  int
	seq  uint64
	node Node
}

// frontier is a min-heap of entries ordered by (key, seq). Stale entries are
// never removed; a cheaper path to the same position is simply pushed again.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be an entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop is called by heap.Pop and returns the last element.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = entry{}
	*f = old[:n-1]

	return item
}
