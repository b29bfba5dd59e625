package comparer

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/fvbommel/sortorder"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var allModes = []Mode{
	CurrentCulture,
	CurrentCultureIgnoreCase,
	InvariantCulture,
	InvariantCultureIgnoreCase,
	Ordinal,
	OrdinalIgnoreCase,
}

func TestAlphanumericComparer_Compare(t *testing.T) {
	type args struct {
		left, right string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{name: "两个空串相等", args: args{"", ""}, want: 0},
		{name: "空串小于非空", args: args{"", "a"}, want: -1},
		{name: "非空大于空串", args: args{"1", ""}, want: 1},
		{name: "1 < 2", args: args{"1", "2"}, want: -1},
		{name: "1 < 10", args: args{"1", "10"}, want: -1},
		{name: "2 < 10", args: args{"2", "10"}, want: -1},
		{name: "10 > 2", args: args{"10", "2"}, want: 1},
		{name: "007 == 7", args: args{"007", "7"}, want: 0},
		{name: "ABC8 < ABC13", args: args{"ABC8", "ABC13"}, want: -1},
		{name: "ABC13 < ABC147", args: args{"ABC13", "ABC147"}, want: -1},
		{name: "ABC2 < ABD1, 非数字块先决定", args: args{"ABC2", "ABD1"}, want: -1},
		{name: "ABC < ABC1, 左边先用完", args: args{"ABC", "ABC1"}, want: -1},
		{name: "ABC1 > ABC", args: args{"ABC1", "ABC"}, want: 1},
		{name: "数字块相等后继续比较", args: args{"a007b", "a7c"}, want: -1},
		{name: "多个数字块", args: args{"v1.2.10", "v1.2.9"}, want: 1},
		{name: "符号不参与数值解析", args: args{"x-5", "x-10"}, want: -1},
		{name: "数字块对非数字块", args: args{"1a", "a1"}, want: -1},
		{name: "int64最大值", args: args{"9223372036854775807", "9223372036854775806"}, want: 1},
	}
	for _, mode := range allModes {
		ac := New(mode, WithLocale(language.English))
		for _, tt := range tests {
			t.Run(mode.String()+"/"+tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, ac.Compare(tt.args.left, tt.args.right))
			})
		}
	}
}

// 超出int范围的数字块退化为文本比较, 结果是字典序而不是数值大小
func TestAlphanumericComparer_Overflow(t *testing.T) {
	big := "1" + strings.Repeat("0", 29)  // 30位
	smaller := strings.Repeat("9", 29) // 29位, 数值上更小
	for _, mode := range []Mode{Ordinal, InvariantCulture} {
		ac := New(mode)
		t.Run(mode.String(), func(t *testing.T) {
			assert.Equal(t, -1, ac.Compare(big, smaller), "文本序: '1' < '9'")
			assert.Equal(t, 1, ac.Compare(smaller, big))
			assert.Equal(t, -1, ac.Compare("x"+big, "x2"), "溢出的一边和普通数字也按文本比较")
			assert.Equal(t, 0, ac.Compare(big, big))
			assert.Equal(t, 1, ac.Compare("99999999999999999999", "5"))
		})
	}

	// 前导零不算溢出
	ac := New(Ordinal)
	assert.Equal(t, 0, ac.Compare(strings.Repeat("0", 40)+"7", "7"))
}

// 非ASCII的Nd数字是数字块, 但不能按数值解析
func TestAlphanumericComparer_NonASCIIDigits(t *testing.T) {
	ac := New(Ordinal)
	assert.Equal(t, 1, ac.Compare("a٣", "a3"))
	assert.Equal(t, -1, ac.Compare("a3", "a٣"))
	assert.Equal(t, 0, ac.Compare("١٢b", "١٢b"))
	// "٣x" 分成 ["٣", "x"] 两块
	assert.Equal(t, -1, ac.Compare("٣a", "٣b"))
}

func TestAlphanumericComparer_CaseModes(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{mode: Ordinal, want: strings.Compare("abc", "ABC")},
		{mode: OrdinalIgnoreCase, want: 0},
		{mode: InvariantCulture, want: -1},
		{mode: InvariantCultureIgnoreCase, want: 0},
		{mode: CurrentCultureIgnoreCase, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			ac := New(tt.mode, WithLocale(language.English))
			assert.Equal(t, tt.want, ac.Compare("abc", "ABC"))
			assert.Equal(t, -tt.want, ac.Compare("ABC", "abc"))
		})
	}
	assert.Equal(t, 1, New(Ordinal).Compare("abc", "ABC"))
	assert.Equal(t, 0, New(OrdinalIgnoreCase).Compare("Item10", "iTEM010"))
	assert.Equal(t, -1, New(OrdinalIgnoreCase).Compare("item", "ITEMS"))
}

func TestAlphanumericComparer_Locale(t *testing.T) {
	// 瑞典语里 ä 排在 z 后面, 德语里 ä 跟着 a
	sv := New(CurrentCulture, WithLocale(language.Swedish))
	de := New(CurrentCulture, WithLocale(language.German))
	assert.Equal(t, -1, sv.Compare("zebra2", "äpple1"))
	assert.Equal(t, 1, de.Compare("zebra2", "äpple1"))

	assert.Equal(t, language.Swedish, sv.Locale())
	assert.Equal(t, language.Und, New(InvariantCulture).Locale())
	assert.Equal(t, language.Und, New(Ordinal).Locale())
}

func TestAlphanumericComparer_CurrentLocaleFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "sv_SE.UTF-8")
	ac := New(CurrentCulture)
	assert.Equal(t, language.MustParse("sv-SE"), ac.Locale())
	assert.Equal(t, -1, ac.Compare("z", "ä"))
}

func TestAlphanumericComparer_CompareNullable(t *testing.T) {
	ac := New(Ordinal)
	empty, a := "", "a"
	assert.Equal(t, 0, ac.CompareNullable(nil, nil))
	assert.Equal(t, 0, ac.CompareNullable(nil, &empty))
	assert.Equal(t, 0, ac.CompareNullable(&empty, nil))
	assert.Equal(t, -1, ac.CompareNullable(nil, &a))
	assert.Equal(t, 1, ac.CompareNullable(&a, nil))
}

func TestAlphanumericComparer_CompareBytes(t *testing.T) {
	pairs := [][2]string{
		{"item2", "item10"},
		{"ABC", "ABC1"},
		{"007", "7"},
		{"", "x"},
		{"abc", "ABC"},
	}
	for _, mode := range allModes {
		ac := New(mode)
		var bc BasicComparer = ac.Bytes()
		for _, p := range pairs {
			want := ac.Compare(p[0], p[1])
			assert.Equal(t, want, ac.CompareBytes([]byte(p[0]), []byte(p[1])), "%s %q %q", mode, p[0], p[1])
			assert.Equal(t, want, bc.Compare([]byte(p[0]), []byte(p[1])))
		}
	}
	assert.Equal(t, 0, New(Ordinal).CompareBytes(nil, []byte{}))
}

func TestAlphanumericComparer_Sort(t *testing.T) {
	for _, mode := range allModes {
		t.Run(mode.String(), func(t *testing.T) {
			ac := New(mode, WithLocale(language.English))
			items := []string{"item10", "item2", "item1", "item"}
			sort.SliceStable(items, func(i, j int) bool { return ac.Less(items[i], items[j]) })
			assert.Equal(t, []string{"item", "item1", "item2", "item10"}, items)
		})
	}
}

func TestAlphanumericComparer_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphabet := []rune("aAbB0123456789-. ä٣")
	randString := func() string {
		n := r.Intn(12)
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[r.Intn(len(alphabet))]
		}
		return string(rs)
	}

	for _, mode := range allModes {
		ac := New(mode, WithLocale(language.English))
		for i := 0; i < 500; i++ {
			a, b := randString(), randString()
			assert.Equal(t, 0, ac.Compare(a, a), "reflexive %s %q", mode, a)
			ab, ba := ac.Compare(a, b), ac.Compare(b, a)
			assert.Contains(t, []int{-1, 0, 1}, ab)
			assert.Equal(t, ab, -ba, "antisymmetric %s %q %q", mode, a, b)
		}
	}
}

func TestAlphanumericComparer_Totality(t *testing.T) {
	ac := New(Ordinal)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := make([]byte, r.Intn(16))
		b := make([]byte, r.Intn(16))
		r.Read(a)
		r.Read(b)
		assert.NotPanics(t, func() {
			ac.CompareBytes(a, b)
			Default.CompareBytes(a, b)
		})
	}
	assert.NotPanics(t, func() {
		ac.Compare(strings.Repeat("9", 10000), strings.Repeat("9", 9999)+"8")
	})
}

func TestAlphanumericComparer_Concurrent(t *testing.T) {
	ac := New(InvariantCultureIgnoreCase)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.Equal(t, -1, ac.Compare("File2", "file10"))
				assert.Equal(t, 0, ac.Compare("FILE007", "file7"))
			}
		}()
	}
	wg.Wait()
}

func TestDefault(t *testing.T) {
	assert.Equal(t, CurrentCulture, Default.Mode())
	assert.Equal(t, -1, Default.Compare("item2", "item10"))
}

func BenchmarkAlphanumericComparer_Ordinal(b *testing.B) {
	benchmarkCompare(b, New(Ordinal).Compare)
}

func BenchmarkAlphanumericComparer_InvariantCulture(b *testing.B) {
	benchmarkCompare(b, New(InvariantCulture).Compare)
}

// 对照组
func BenchmarkSortorderNaturalLess(b *testing.B) {
	benchmarkCompare(b, func(a, c string) int {
		if sortorder.NaturalLess(a, c) {
			return -1
		}
		return 1
	})
}

func benchmarkCompare(b *testing.B, cmp Compare[string]) {
	left, right := "photo_2023_img0042_v10.jpg", "photo_2023_img0042_v9.jpg"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cmp(left, right)
	}
}
