package comparer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"natcmp/utils"

	"golang.org/x/text/language"
)

/**
按"数字块/非数字块"分组比较两个字符串

	"item2"  -> ["item", "2"]
	"item10" -> ["item", "10"]

两边的块依次比较:
1. 都是数字块并且都能解析成int, 按数值比较 ("007" == "7")
2. 否则按配置的Mode比较文本
   数字块太长溢出int的时候也走文本比较, 不做大数运算
3. 第一个不相等的块决定结果
4. 某一边先用完, 用完的那一边小 ("ABC" < "ABC1")

	"1" < "10" < "100"
	"ABC8" < "ABC13" < "ABC147"
*/

// Default 默认的比较器, 使用当前环境的locale
var Default = New(CurrentCulture)

// AlphanumericComparer 创建之后不可变, 可以在多个goroutine之间共享
type AlphanumericComparer struct {
	mode   Mode
	locale language.Tag
	text   textComparer
}

type options struct {
	locale *language.Tag
}

type Option func(*options)

// WithLocale 指定CurrentCulture系列模式使用的locale, 不再读取环境变量
// 对其他模式无效
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = &tag
	}
}

func New(mode Mode, opts ...Option) *AlphanumericComparer {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	ac := &AlphanumericComparer{mode: mode, locale: language.Und}
	if mode.current() {
		if o.locale != nil {
			ac.locale = *o.locale
		} else {
			ac.locale = CurrentLocale()
		}
	}
	ac.text = newTextComparer(mode, ac.locale)
	return ac
}

func (ac *AlphanumericComparer) Mode() Mode {
	return ac.mode
}

func (ac *AlphanumericComparer) Locale() language.Tag {
	return ac.locale
}

// Compare left < right 返回 -1, 相等返回 0, left > right 返回 1
func (ac *AlphanumericComparer) Compare(left, right string) int {
	l, r := 0, 0
	for l < len(left) || r < len(right) {
		if l >= len(left) {
			return -1 // 左边先用完
		}
		if r >= len(right) {
			return 1 // 右边先用完
		}

		leftStart, rightStart := l, r
		var leftIsDigits, rightIsDigits bool
		l, leftIsDigits = nextChunk(left, l)
		r, rightIsDigits = nextChunk(right, r)

		leftChunk, rightChunk := left[leftStart:l], right[rightStart:r]

		var result int
		if leftIsDigits && rightIsDigits {
			result = ac.compareDigits(leftChunk, rightChunk)
		} else {
			result = ac.text.compare(leftChunk, rightChunk)
		}

		if result != 0 {
			return sign(result)
		}
	}
	return 0
}

// compareDigits 两个数字块都能解析时按数值比较, 否则退化为文本比较
// strconv.Atoi只认ASCII数字, 其他Nd类数字(例如"٣")同样走文本比较
func (ac *AlphanumericComparer) compareDigits(a, b string) int {
	av, err := strconv.Atoi(a)
	if err != nil {
		return ac.text.compare(a, b)
	}
	bv, err := strconv.Atoi(b)
	if err != nil {
		return ac.text.compare(a, b)
	}
	if av < bv {
		return -1
	} else if av > bv {
		return 1
	}
	return 0
}

// CompareNullable nil 等同于空串
func (ac *AlphanumericComparer) CompareNullable(left, right *string) int {
	var l, r string
	if left != nil {
		l = *left
	}
	if right != nil {
		r = *right
	}
	return ac.Compare(l, r)
}

// CompareBytes 直接比较字节切片, 不拷贝, 实现 BasicComparer
func (ac *AlphanumericComparer) CompareBytes(left, right []byte) int {
	return ac.Compare(utils.BytesToString(left), utils.BytesToString(right))
}

func (ac *AlphanumericComparer) Less(left, right string) bool {
	return ac.Compare(left, right) < 0
}

// Bytes 以 BasicComparer 的形式使用
func (ac *AlphanumericComparer) Bytes() BasicComparer {
	return bytesView{ac}
}

type bytesView struct {
	ac *AlphanumericComparer
}

func (bv bytesView) Compare(a, b []byte) int {
	return bv.ac.CompareBytes(a, b)
}

// nextChunk 从pos开始取一个数字块或非数字块, 返回块结束的位置
func nextChunk(s string, pos int) (end int, isDigits bool) {
	r, size := utf8.DecodeRuneInString(s[pos:])
	isDigits = unicode.IsDigit(r)
	end = pos + size
	for end < len(s) {
		r, size = utf8.DecodeRuneInString(s[end:])
		if unicode.IsDigit(r) != isDigits {
			break
		}
		end += size
	}
	return end, isDigits
}
