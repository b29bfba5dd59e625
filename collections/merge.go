package collections

type mergeCursor struct {
	list int // 第几路
	pos  int
}

// MergeSorted 多路归并, 每一路输入都必须已经按cmp排好序
// 相等的元素按输入的先后顺序输出
func MergeSorted[T any](lists [][]T, cmp func(a, b T) int) []T {
	total := 0
	for _, list := range lists {
		total += len(list)
	}
	out := make([]T, 0, total)

	heap := InitHeap(func(a, b mergeCursor) int {
		if r := cmp(lists[a.list][a.pos], lists[b.list][b.pos]); r != 0 {
			return r
		}
		return a.list - b.list
	})

	for x, list := range lists {
		if len(list) > 0 {
			heap.Push(mergeCursor{list: x})
		}
	}

	for !heap.Empty() {
		c, _ := heap.Pop()
		out = append(out, lists[c.list][c.pos])
		if c.pos+1 < len(lists[c.list]) {
			heap.Push(mergeCursor{list: c.list, pos: c.pos + 1})
		}
	}
	return out
}
