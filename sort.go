package natcmp

import (
	"strings"

	"natcmp/collections"
	"natcmp/utils"
)

// Sort 按自然顺序排序, 返回新的切片, 不修改lines
// 相等的元素(例如 "a7" 和 "a007")保持输入顺序
func Sort(lines []string, opt *Options) []string {
	cmp := opt.GetCompare()
	lines = filterBlank(lines, opt)

	if opt.GetUnique() {
		tree := collections.NewLLRBTree[string, struct{}](cmp)
		for _, line := range lines {
			tree.PutIfAbsent(line, struct{}{})
		}
		return tree.Keys()
	}

	out := make([]string, len(lines))
	copy(out, lines)
	utils.MergeSort(out, cmp)
	return out
}

// Merge 归并多路已经有序的输入, 倒序时输入也必须是倒序的
func Merge(inputs [][]string, opt *Options) []string {
	cmp := opt.GetCompare()
	lists := make([][]string, 0, len(inputs))
	for _, input := range inputs {
		lists = append(lists, filterBlank(input, opt))
	}

	out := collections.MergeSorted(lists, cmp)
	if !opt.GetUnique() || len(out) == 0 {
		return out
	}

	// 有序之后相等的元素一定相邻
	uniq := out[:1]
	for _, line := range out[1:] {
		if cmp(uniq[len(uniq)-1], line) != 0 {
			uniq = append(uniq, line)
		}
	}
	return uniq
}

// Search 在Sort的结果里二分查找key, 返回值同 utils.BinarySearch
func Search(sorted []string, key string, opt *Options) int {
	return utils.BinarySearch(sorted, key, opt.GetCompare())
}

// IsSorted sorted里是否没有逆序对
func IsSorted(lines []string, opt *Options) bool {
	cmp := opt.GetCompare()
	for i := 1; i < len(lines); i++ {
		if cmp(lines[i-1], lines[i]) > 0 {
			return false
		}
	}
	return true
}

func filterBlank(lines []string, opt *Options) []string {
	if !opt.GetIgnoreBlank() {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
