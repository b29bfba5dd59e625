package error

import (
	"errors"
	"fmt"
)

// ConfigErr 配置文件加载失败
type ConfigErr struct {
	error
	Path string
}

func NewConfigErr(path string, cause error) error {
	err := &ConfigErr{
		error: fmt.Errorf("natcmp/config, path=%s: %w", path, cause),
		Path:  path,
	}
	return err
}

func (e *ConfigErr) Unwrap() error {
	return errors.Unwrap(e.error)
}

func IsConfigErr(err error) bool {
	var ce *ConfigErr
	return errors.As(err, &ce)
}

var (
	ErrUnknownMode       = errors.New("natcmp/unknown compare mode")
	ErrUnknownLocale     = errors.New("natcmp/unknown locale")
	ErrUnsupportedConfig = errors.New("natcmp/unsupported config format")
)
