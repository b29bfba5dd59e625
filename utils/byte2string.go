package utils

import "unsafe"

// BytesToString 超快的字节数组转字符串, 不拷贝
// 返回的字符串和b共享内存, 在字符串使用期间不能修改b
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
