// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式，遇到第一个配置错误后由 [Builder.Build] 返回：
//
//	logger, cleanup, err := xlog.New().
//		SetOutput(os.Stderr).
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//	logger.Info(ctx, "ipv4 parsed", slog.String("input", s), slog.Int64("value", v))
//
// # 日志轮转
//
// [Builder.SetRotation] 将输出切换为 xrotate 的 lumberjack 轮转文件，
// 文件由 cleanup 关闭。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// [ParseLevel] 从字符串解析；Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 可直接作为配置字段。
//
// # 派生 Logger
//
// [Logger.With] 返回 [Logger] 接口；派生 logger 共享父级的 LevelVar，
// 对父级调用 SetLevel 会同步生效。
//
// [Discard] 返回丢弃所有输出的 Logger。
package xlog
