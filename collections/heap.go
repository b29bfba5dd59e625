package collections

// Heap 最小堆, 堆顶是cmp意义下最小的元素
// 需要最大堆时把cmp反过来即可
type Heap[T any] struct {
	cmp        func(a, b T) int
	array      []T
	lastOffset int
}

func InitHeap[T any](cmp func(a, b T) int) *Heap[T] {
	return &Heap[T]{
		cmp:        cmp,
		array:      make([]T, 1), // 创建一个index=0是空的数组
		lastOffset: 0,
	}
}

func (h *Heap[T]) less(i, j int) bool {
	return h.cmp(h.array[i], h.array[j]) < 0
}

func (h *Heap[T]) swap(i, j int) {
	h.array[i], h.array[j] = h.array[j], h.array[i]
}

// 向上浮动
// k当前元素在数组中的下标
func (h *Heap[T]) swim(k int) {
	for k > 1 && h.less(k, k/2) { // 当前节点还未到达根节点
		h.swap(k, k/2)
		k = k / 2
	}
}

// 向下沉
func (h *Heap[T]) sink(k int) {
	for k*2 <= h.lastOffset { // 当前节点还未到达底部
		j := k * 2
		if j+1 <= h.lastOffset && h.less(j+1, j) {
			j = j + 1
		}
		if !h.less(j, k) {
			break
		}
		h.swap(k, j)
		k = j
	}
}

func (h *Heap[T]) Push(v T) {
	h.array = append(h.array, v)
	h.lastOffset++
	h.swim(h.lastOffset)
}

func (h *Heap[T]) Empty() bool {
	return h.lastOffset == 0
}

func (h *Heap[T]) Len() int {
	return h.lastOffset
}

// Peek 查看堆顶, 不弹出
func (h *Heap[T]) Peek() (v T, ok bool) {
	if h.Empty() {
		return v, false
	}
	return h.array[1], true
}

func (h *Heap[T]) Pop() (v T, ok bool) {
	if h.Empty() {
		return v, false
	}

	v = h.array[1]
	h.swap(1, h.lastOffset)
	var zero T
	h.array[h.lastOffset] = zero
	h.array = h.array[:h.lastOffset]
	h.lastOffset--
	h.sink(1)
	return v, true
}

func (h *Heap[T]) Clear() {
	h.array = h.array[:1]
	h.lastOffset = 0
}
