package utils

// MergeSort 归并排序, 稳定, 相等的元素保持原来的先后顺序
// 自然排序里 "7" 和 "007" 相等, 稳定排序保证输出可预期
/**
e.g 自然排序, 自顶向下拆分再两两合并

	[item10, item2, file7, item1, file007]
	[item10, item2, file7]        [item1, file007]
	[item10, item2] [file7]       [item1] [file007]
	[item2, item10] [file7]       [file007, item1]
	[file7, item2, item10]        [file007, item1]
	[file7, file007, item1, item2, item10]

file7 和 file007 相等, 合并时左边优先, 所以 file7 仍然在前
*/
func MergeSort[T any](arr []T, cmp func(a, b T) int) {
	if len(arr) < 2 {
		return
	}
	aux := make([]T, len(arr))
	copy(aux, arr)
	mergeSort(arr, aux, 0, len(arr)-1, cmp)
}

func mergeSort[T any](arr, aux []T, lo int, hi int, cmp func(a, b T) int) {

	if lo >= hi {
		return
	}

	mid := (lo + hi) >> 1
	mergeSort(arr, aux, lo, mid, cmp)
	mergeSort(arr, aux, mid+1, hi, cmp)
	merge(arr, aux, lo, mid, hi, cmp)
}

func merge[T any](arr, aux []T, lo, mid, hi int, cmp func(a, b T) int) {

	i := lo
	j := mid + 1
	ptr := lo // 当前数组的指针
	for ptr <= hi {
		if j > hi {
			arr[ptr] = aux[i]
			i++
		} else if i > mid {
			arr[ptr] = aux[j]
			j++
		} else if cmp(aux[j], aux[i]) < 0 { // 右边严格小于左边才取右边, 保证稳定
			arr[ptr] = aux[j]
			j++
		} else {
			arr[ptr] = aux[i]
			i++
		}
		ptr++
	}

	for ptr := lo; ptr <= hi; ptr++ {
		aux[ptr] = arr[ptr]
	}

}
