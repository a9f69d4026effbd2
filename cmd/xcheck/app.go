package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/omeyang/xcheck/pkg/config/xconf"
	"github.com/omeyang/xcheck/pkg/observability/xlog"
	"github.com/omeyang/xcheck/pkg/observability/xrotate"
	"github.com/urfave/cli/v3"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// fileConfig 是配置文件的结构。
type fileConfig struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
		MaxMB  int    `koanf:"max_size_mb"`
	} `koanf:"log"`
	Output string `koanf:"output"`
}

// app 持有一次命令执行所需的输出目标与日志。
// logger 与 output 在根命令的 Before 阶段确定。
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   xlog.Logger
	closeLog func() error
	output   string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		logger:   xlog.Discard(),
		closeLog: func() error { return nil },
		output:   outputText,
	}
}

// close 释放日志文件等资源。
func (a *app) close() error {
	return a.closeLog()
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xcheck",
		Usage:     "字符串校验与 IPv4 转换工具",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
				Value: xlog.FormatText,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志写入文件（按大小轮转），默认 stderr",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式 text/json",
				Value:   outputText,
			},
		},
		Before:   a.before,
		Commands: a.commands(),
		// 禁止 urfave/cli 直接 os.Exit，退出码统一由 run() 映射。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		OnUsageError:   onUsageError,
	}
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// before 合并配置文件与命令行参数，构建 logger。
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var fc fileConfig
	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return ctx, usagef("加载配置失败: %v", err)
		}
		if err := cfg.Unmarshal("", &fc); err != nil {
			return ctx, usagef("解析配置失败: %v", err)
		}
	}

	level := pick(cmd, "log-level", fc.Log.Level)
	format := pick(cmd, "log-format", fc.Log.Format)
	output := strings.ToLower(strings.TrimSpace(pick(cmd, "output", fc.Output)))

	switch output {
	case outputText, outputJSON:
		a.output = output
	default:
		return ctx, usagef("未知输出格式 %q", output)
	}

	b := xlog.New().
		SetOutput(a.stderr).
		SetLevelString(level).
		SetFormat(format)
	if file := pick(cmd, "log-file", fc.Log.File); file != "" {
		var opts []xrotate.Option
		if fc.Log.MaxMB > 0 {
			opts = append(opts, xrotate.WithMaxSize(fc.Log.MaxMB))
		}
		b.SetRotation(file, opts...)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return ctx, usagef("%v", err)
	}
	a.logger = logger.With(slog.String("app", "xcheck"))
	a.closeLog = cleanup

	if path := cmd.String("config"); path != "" {
		a.logger.Debug(ctx, "config loaded", slog.String("path", path))
	}
	return ctx, nil
}

// pick 返回显式设置的命令行参数，其次是配置文件值，最后是参数默认值。
func pick(cmd *cli.Command, flag, fromFile string) string {
	if cmd.IsSet(flag) || fromFile == "" {
		return cmd.String(flag)
	}
	return fromFile
}
