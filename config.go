package natcmp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	error2 "natcmp/error"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadOptions 从配置文件读取选项, 按扩展名区分格式
//
//	mode = "ordinal-ignore-case"
//	locale = "de-DE"
//	unique = true
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, error2.NewConfigErr(path, err)
	}
	opt, err := ParseOptions(data, filepath.Ext(path))
	if err != nil {
		return nil, error2.NewConfigErr(path, err)
	}
	return opt, nil
}

// ParseOptions ext 为 ".toml", ".yaml" 或 ".yml", 未知的字段视为错误
func ParseOptions(data []byte, ext string) (*Options, error) {
	opt := new(Options)
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(opt)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown keys %v", undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(opt); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", error2.ErrUnsupportedConfig, ext)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}
