package xrotate

import "io"

// Rotator 可轮转的日志输出目标。
type Rotator interface {
	io.WriteCloser

	// Rotate 立即轮转：关闭当前文件，重命名为备份并创建新文件。
	Rotate() error
}
