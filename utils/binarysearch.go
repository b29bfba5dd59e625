package utils

// BinarySearch 二分搜索, 类似于java的collections.binarysearch()
// 因为用不惯golang的sort.Search
/***
arr必须已经按cmp排好序, 多个元素相等时返回其中任意一个的下标
e.g (自然排序)
输入: [a1, a2, a10, a20], 查找 key=a3,  输出: -3, 负数代表不存在该元素, 应该插入在下标索引 2
输入: [a1, a2, a10, a20], 查找 key=a30, 输出: -5
输入: [a1, a2, a10, a20], 查找 key=a010 输出: 2, a010 和 a10 相等
输入: [a1, a2, a10, a20], 查找 key=a,   输出: -1
结论: 当且仅当找到元素的时候, 返回下标索引
	 否则, 返回 -(插入位置+1)

时间复杂度为Olog(n)
*/
func BinarySearch[T any](arr []T, key T, cmp func(a, b T) int) int {
	lo := 0
	hi := len(arr) - 1
	for lo <= hi {
		j := int(uint(lo+hi) >> 1)
		r := cmp(arr[j], key)
		if r == 0 {
			return j
		} else if r < 0 {
			lo = j + 1
		} else {
			hi = j - 1
		}
	}
	return -(lo + 1)
}

// InsertionPoint 把BinarySearch的返回值换算成插入位置
func InsertionPoint(idx int) int {
	if idx < 0 {
		return -idx - 1
	}
	return idx
}
