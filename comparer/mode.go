package comparer

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	error2 "natcmp/error"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Mode 非数字块的文本比较方式
type Mode uint8

const (
	CurrentCulture Mode = iota // 默认
	CurrentCultureIgnoreCase
	InvariantCulture
	InvariantCultureIgnoreCase
	Ordinal
	OrdinalIgnoreCase
)

var modeNames = [...]string{
	CurrentCulture:             "current",
	CurrentCultureIgnoreCase:   "current-ignore-case",
	InvariantCulture:           "invariant",
	InvariantCultureIgnoreCase: "invariant-ignore-case",
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

func (m Mode) IgnoreCase() bool {
	return m == CurrentCultureIgnoreCase || m == InvariantCultureIgnoreCase || m == OrdinalIgnoreCase
}

// current 是否依赖当前环境的locale, 未知的模式按CurrentCulture处理
func (m Mode) current() bool {
	switch m {
	case InvariantCulture, InvariantCultureIgnoreCase, Ordinal, OrdinalIgnoreCase:
		return false
	}
	return true
}

// ParseMode 解析模式名, 大小写不敏感, "current-ignore-case" 和 "CurrentCultureIgnoreCase" 都可以
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "", "culture", "").Replace(key)
	for m, name := range modeNames {
		if strings.ReplaceAll(name, "-", "") == key {
			return Mode(m), nil
		}
	}
	return CurrentCulture, fmt.Errorf("%w: %q", error2.ErrUnknownMode, s)
}

// MarshalText / UnmarshalText 让toml/yaml配置可以直接写模式名
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// textComparer 比较两个非数字块(或者溢出的数字块)
type textComparer interface {
	compare(a, b string) int
}

type ordinalText struct{}

func (ordinalText) compare(a, b string) int {
	return strings.Compare(a, b)
}

// ordinalIgnoreCaseText 逐个rune转大写后比较, 不分配内存
type ordinalIgnoreCaseText struct{}

func (ordinalIgnoreCaseText) compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if (ra == utf8.RuneError && na == 1) || (rb == utf8.RuneError && nb == 1) {
			// 非法的UTF-8字节不做大小写转换, 直接按字节比较
			if a[0] != b[0] {
				if a[0] < b[0] {
					return -1
				}
				return 1
			}
			a, b = a[1:], b[1:]
			continue
		}
		if ra != rb {
			ua, ub := unicode.ToUpper(ra), unicode.ToUpper(rb)
			if ua != ub {
				if ua < ub {
					return -1
				}
				return 1
			}
		}
		a, b = a[na:], b[nb:]
	}
	return sign(len(a) - len(b))
}

// cultureText 基于 x/text/collate
// collate.Collator内部带迭代缓冲区, 不能并发使用, 所以每次调用从pool里借一个
type cultureText struct {
	pool sync.Pool
}

func newCultureText(tag language.Tag, ignoreCase bool) *cultureText {
	var opts []collate.Option
	if ignoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	ct := &cultureText{}
	ct.pool.New = func() interface{} {
		return collate.New(tag, opts...)
	}
	return ct
}

func (ct *cultureText) compare(a, b string) int {
	c := ct.pool.Get().(*collate.Collator)
	r := c.CompareString(a, b)
	ct.pool.Put(c)
	return r
}

func newTextComparer(mode Mode, tag language.Tag) textComparer {
	switch mode {
	case Ordinal:
		return ordinalText{}
	case OrdinalIgnoreCase:
		return ordinalIgnoreCaseText{}
	case InvariantCulture, InvariantCultureIgnoreCase:
		return newCultureText(language.Und, mode.IgnoreCase())
	default:
		return newCultureText(tag, mode.IgnoreCase())
	}
}
