// xlog.go 定义核心接口：Logger、Leveler、LoggerWithLevel
//
// 设计要点：
//   - 方法强制传入 context.Context，便于 Handler 读取请求级信息
//   - 方法签名只接受 slog.Attr，避免隐式 key-value 转换
//   - 级别通过 slog.LevelVar 动态调整，派生 Logger 共享同一级别

package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger。
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口，与 Logger 分离以保持日志接口最小。
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口，由 [Builder.Build] 返回。
type LoggerWithLevel interface {
	Logger
	Leveler
}

// Discard 返回丢弃所有输出的 Logger，用于测试和未配置日志的场景。
func Discard() Logger {
	return &xlogger{handler: slog.DiscardHandler, levelVar: new(slog.LevelVar)}
}
