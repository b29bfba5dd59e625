package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"natcmp"
	"natcmp/comparer"

	"github.com/spf13/cobra"
)

// 单行最长1MB
const maxLineSize = 1 << 20

type flags struct {
	cfgFile     string
	mode        string
	locale      string
	reverse     bool
	unique      bool
	merge       bool
	ignoreBlank bool
	check       bool
	verbose     bool
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd 每次调用返回新的命令, 方便测试时替换输入输出
func NewRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "natsort [files...]",
		Short: "按自然顺序排序文本行",
		Long: `natsort 把数字块按数值比较, 其余部分按文本比较:

  item1 < item2 < item10
  ABC8  < ABC13 < ABC147

不指定文件或者文件为 "-" 时读取标准输入.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := rootCmd.Flags()
	fs.StringVar(&f.cfgFile, "config", "", "配置文件 (.toml/.yaml)")
	fs.StringVar(&f.mode, "mode", "", "文本比较方式: current, current-ignore-case, invariant, invariant-ignore-case, ordinal, ordinal-ignore-case")
	fs.StringVar(&f.locale, "locale", "", "current系列模式使用的locale, 例如 de-DE (默认读取LC_ALL/LC_COLLATE/LANG)")
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "倒序输出")
	fs.BoolVarP(&f.unique, "unique", "u", false, "去重, 比较相等的行只输出第一行")
	fs.BoolVarP(&f.merge, "merge", "m", false, "每个输入文件已经有序, 只做归并")
	fs.BoolVar(&f.ignoreBlank, "ignore-blank", false, "丢弃空白行")
	fs.BoolVarP(&f.check, "check", "c", false, "只检查输入是否有序")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "输出调试日志")
	return rootCmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opt, err := buildOptions(cmd, f)
	if err != nil {
		return err
	}
	cmp := opt.GetComparer()
	logger.Debug("options",
		"mode", cmp.Mode(),
		"locale", cmp.Locale(),
		"reverse", opt.GetReverse(),
		"unique", opt.GetUnique(),
		"merge", opt.GetMerge())

	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([][]string, 0, len(args))
	for _, name := range args {
		lines, err := readLines(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		logger.Debug("read input", "file", name, "lines", len(lines))
		inputs = append(inputs, lines)
	}

	if f.check {
		for x, lines := range inputs {
			if !natcmp.IsSorted(lines, opt) {
				return fmt.Errorf("%s: not sorted", args[x])
			}
		}
		return nil
	}

	var out []string
	if opt.GetMerge() {
		out = natcmp.Merge(inputs, opt)
	} else {
		var all []string
		for _, lines := range inputs {
			all = append(all, lines...)
		}
		out = natcmp.Sort(all, opt)
	}
	logger.Debug("sorted", "lines", len(out))

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range out {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// buildOptions 先读配置文件, 命令行显式指定的参数覆盖配置文件
func buildOptions(cmd *cobra.Command, f *flags) (*natcmp.Options, error) {
	opt := &natcmp.Options{}
	if f.cfgFile != "" {
		loaded, err := natcmp.LoadOptions(f.cfgFile)
		if err != nil {
			return nil, err
		}
		opt = loaded
	}

	changed := cmd.Flags().Changed
	if changed("mode") {
		mode, err := comparer.ParseMode(f.mode)
		if err != nil {
			return nil, err
		}
		opt.Mode = mode
	}
	if changed("locale") {
		opt.Locale = f.locale
	}
	if changed("reverse") {
		opt.Reverse = f.reverse
	}
	if changed("unique") {
		opt.Unique = f.unique
	}
	if changed("merge") {
		opt.Merge = f.merge
	}
	if changed("ignore-blank") {
		opt.IgnoreBlank = f.ignoreBlank
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

func readLines(stdin io.Reader, name string) ([]string, error) {
	r := stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}
