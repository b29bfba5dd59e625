package natcmp

import (
	"strings"

	"natcmp/cache"
	"natcmp/comparer"

	"golang.org/x/text/language"
)

const (
	defaultMode = comparer.CurrentCulture

	// 最多缓存的比较器个数, 每个比较器持有自己的collator池
	comparerCacheSize = 16
)

type comparerKey struct {
	mode   comparer.Mode
	locale string
}

var comparers = cache.NewLRU[comparerKey, *comparer.AlphanumericComparer](comparerCacheSize)

// Options 排序相关的选项
type Options struct {
	Mode comparer.Mode `toml:"mode" yaml:"mode"` // 非数字块的比较方式

	Locale string `toml:"locale" yaml:"locale"` // CurrentCulture系列模式使用的locale, 空串时读取环境变量

	Reverse bool `toml:"reverse" yaml:"reverse"` // 倒序

	Unique bool `toml:"unique" yaml:"unique"` // 去重, 比较结果相等即视为重复, 保留第一次出现的

	Merge bool `toml:"merge" yaml:"merge"` // 输入已经各自有序, 只做归并

	IgnoreBlank bool `toml:"ignore_blank" yaml:"ignore_blank"` // 丢弃空白行

	Cmp *comparer.AlphanumericComparer `toml:"-" yaml:"-"` // 直接指定比较器, 忽略Mode和Locale
}

func (opt *Options) GetMode() comparer.Mode {
	if opt == nil {
		return defaultMode
	}
	return opt.Mode
}

// GetLocale Locale支持 "sv-SE" 和 "sv_SE.UTF-8" 两种写法
// 为空时返回false, 由比较器自己读取环境变量
// 无法解析时同样返回false, 调用方应先用Validate拦截
func (opt *Options) GetLocale() (language.Tag, bool) {
	if opt == nil || strings.TrimSpace(opt.Locale) == "" {
		return language.Und, false
	}
	tag, err := comparer.LookupLocale(opt.Locale)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Validate 检查配置的locale能否解析, 失败时返回 ErrUnknownLocale
func (opt *Options) Validate() error {
	if opt == nil || strings.TrimSpace(opt.Locale) == "" {
		return nil
	}
	_, err := comparer.LookupLocale(opt.Locale)
	return err
}

func (opt *Options) GetReverse() bool {
	return opt != nil && opt.Reverse
}

func (opt *Options) GetUnique() bool {
	return opt != nil && opt.Unique
}

func (opt *Options) GetMerge() bool {
	return opt != nil && opt.Merge
}

func (opt *Options) GetIgnoreBlank() bool {
	return opt != nil && opt.IgnoreBlank
}

// GetComparer 按选项取比较器, 默认选项直接复用 comparer.Default
// 其余组合按 (mode, locale) 缓存, 相同选项的多次排序共用collator池
func (opt *Options) GetComparer() *comparer.AlphanumericComparer {
	if opt != nil && opt.Cmp != nil {
		return opt.Cmp
	}
	tag, ok := opt.GetLocale()
	mode := opt.GetMode()
	if !ok && mode == defaultMode {
		return comparer.Default
	}
	if !ok {
		tag = comparer.CurrentLocale()
	}
	key := comparerKey{mode: mode, locale: tag.String()}
	return comparers.GetOrCreate(key, func() *comparer.AlphanumericComparer {
		return comparer.New(mode, comparer.WithLocale(tag))
	})
}

// GetCompare 考虑了Reverse之后的三路比较函数
func (opt *Options) GetCompare() comparer.Compare[string] {
	cmp := opt.GetComparer().Compare
	if opt.GetReverse() {
		return func(a, b string) int {
			return cmp(b, a)
		}
	}
	return cmp
}
