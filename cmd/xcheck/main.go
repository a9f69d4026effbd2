// xcheck 是字符串校验与 IPv4 转换工具的命令行入口。
//
// 用法:
//
//	xcheck [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json）
//	    --log-level   日志级别 debug/info/warn/error（默认 info）
//	    --log-format  日志格式 text/json（默认 text）
//	    --log-file    日志写入文件并按大小轮转（默认 stderr）
//	-o, --output      输出格式 text/json（默认 text）
//
// 命令:
//
//	ip2int <addr>...        点分十进制转整数（--strict 校验每段 0~255）
//	int2ip <n>...           整数转点分十进制
//	check -k <kind> <s>...  按规则校验（ip/mobile/email/url/idcard）
//	chars <s>...            字符分类
//	kinds                   列出校验规则
//
// 命令行参数优先于配置文件。
//
// 退出码:
//
//	0: 全部成功
//	1: 存在无法解析的地址或未通过的校验
//	2: 参数错误（缺少参数、未知规则、无效配置等）
//
// 示例:
//
//	xcheck ip2int 192.168.1.1             # 3232235777
//	xcheck int2ip 3232235777              # 192.168.1.1
//	xcheck check -k mobile 13800000000    # 13800000000	true
//	xcheck -o json chars 你好
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(stdout, stderr)
	defer func() {
		if err := a.close(); err != nil {
			fmt.Fprintf(stderr, "关闭日志失败: %v\n", err)
		}
	}()
	if err := a.command().Run(ctx, args); err != nil {
		return exitCode(err, stderr)
	}
	return 0
}

// exitCode 将错误映射为文档约定的退出码。
func exitCode(err error, stderr io.Writer) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
