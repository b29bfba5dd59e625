package comparer

import (
	"fmt"
	"os"
	"strings"

	error2 "natcmp/error"

	"golang.org/x/text/language"
)

// 按POSIX的优先级查找排序用的locale
var localeEnvKeys = []string{"LC_ALL", "LC_COLLATE", "LANG"}

// CurrentLocale 当前环境的locale, 找不到或者无法解析时返回 language.Und (根排序规则)
func CurrentLocale() language.Tag {
	for _, key := range localeEnvKeys {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}
	return language.Und
}

// ParseLocale 把 "en_US.UTF-8", "de_DE@euro" 这类POSIX写法转换成BCP 47 tag
// 无法解析时返回 language.Und
func ParseLocale(s string) language.Tag {
	tag, err := LookupLocale(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// LookupLocale 同 ParseLocale, 但无法解析时返回 ErrUnknownLocale
// 空串, "C" 和 "POSIX" 都是根排序规则 language.Und
func LookupLocale(s string) (language.Tag, error) {
	name := strings.TrimSpace(s)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", error2.ErrUnknownLocale, s)
	}
	return tag, nil
}
