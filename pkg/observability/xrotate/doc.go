// Package xrotate 提供日志文件轮转，基于 gopkg.in/natefinch/lumberjack.v2。
//
// 按文件大小轮转，超出 MaxSize 后重命名为带时间戳的备份，
// 按 MaxBackups / MaxAge 清理旧备份：
//
//	r, err := xrotate.NewLumberjack("/var/log/xcheck.log",
//		xrotate.WithMaxSize(50),
//		xrotate.WithCompress(true),
//	)
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
// 通常通过 xlog.Builder.SetRotation 使用。
package xrotate
