package comparer

// BasicComparer 基础的比较器
type BasicComparer interface {
	// Compare 比较
	// 当a元素小于b的时候, 返回-1
	// 相等时返回 0
	// 当a元素大于b的时候, 返回1
	Compare(a, b []byte) int
}

// Compare 三路比较函数, 可以直接传给utils/collections里的排序和容器
type Compare[T any] func(a, b T) int

// sign 把任意整数收敛到 -1, 0, 1
func sign(r int) int {
	if r < 0 {
		return -1
	} else if r > 0 {
		return 1
	}
	return 0
}
