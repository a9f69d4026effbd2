package xrotate

import "errors"

var (
	// ErrEmptyFilename 表示日志文件名为空。
	ErrEmptyFilename = errors.New("xrotate: empty filename")

	// ErrInvalidConfig 表示轮转参数越界。
	ErrInvalidConfig = errors.New("xrotate: invalid config")
)
