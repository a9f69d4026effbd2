// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xrotate: 日志文件轮转，基于 lumberjack
//
// 设计原则：
//   - 日志接口以 context 为第一个参数
//   - 文件输出可选，默认写入 stderr
package observability
