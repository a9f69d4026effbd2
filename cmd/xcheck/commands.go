package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/omeyang/xcheck/pkg/util/xchar"
	"github.com/omeyang/xcheck/pkg/util/xnet"
	"github.com/omeyang/xcheck/pkg/util/xvalid"
	"github.com/urfave/cli/v3"
)

func (a *app) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "ip2int",
			Usage:     "点分十进制 IPv4 转整数",
			ArgsUsage: "<addr>...",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "要求每段在 0~255 内",
				},
			},
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return a.ip2int(ctx, cmd.Args().Slice(), cmd.Bool("strict"))
			},
		},
		{
			Name:         "int2ip",
			Usage:        "整数转点分十进制 IPv4",
			ArgsUsage:    "<n>...",
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return a.int2ip(ctx, cmd.Args().Slice())
			},
		},
		{
			Name:      "check",
			Usage:     "按规则校验字符串",
			ArgsUsage: "<text>...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "kind",
					Aliases: []string{"k"},
					Usage:   "校验规则: " + kindList(),
				},
			},
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return a.check(ctx, cmd.String("kind"), cmd.Args().Slice())
			},
		},
		{
			Name:         "chars",
			Usage:        "字符分类（汉字、多字节、CJK、单词字符）",
			ArgsUsage:    "<text>...",
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return a.chars(ctx, cmd.Args().Slice())
			},
		},
		{
			Name:  "kinds",
			Usage: "列出校验规则",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return a.kinds(ctx)
			},
		},
	}
}

func kindList() string {
	kinds := xvalid.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, "/")
}

type ipResult struct {
	Input string `json:"input"`
	Value *int64 `json:"value,omitempty"`
	Addr  string `json:"addr,omitempty"`
	Error string `json:"error,omitempty"`
}

func (a *app) ip2int(ctx context.Context, args []string, strict bool) error {
	if len(args) == 0 {
		return usagef("ip2int 需要至少一个地址")
	}
	results := make([]ipResult, 0, len(args))
	failed := 0
	for _, s := range args {
		r := ipResult{Input: s}
		if strict {
			v, err := xnet.ParseIPv4Strict(s)
			if err != nil {
				r.Error = err.Error()
			} else {
				n := int64(v)
				r.Value = &n
			}
		} else if v, ok := xnet.ParseIPv4(s); ok {
			r.Value = &v
		} else {
			r.Error = xnet.ErrInvalidAddress.Error()
		}
		if r.Value == nil {
			failed++
			a.logger.Warn(ctx, "ipv4 parse failed", slog.String("input", s), slog.Bool("strict", strict))
		} else {
			a.logger.Debug(ctx, "ipv4 parsed", slog.String("input", s), slog.Int64("value", *r.Value))
		}
		results = append(results, r)
	}

	err := emitTo(a, results, func(r ipResult) string {
		if r.Value == nil {
			return r.Input + "\tinvalid"
		}
		return r.Input + "\t" + strconv.FormatInt(*r.Value, 10)
	})
	if err != nil {
		return err
	}
	return failures(failed)
}

func (a *app) int2ip(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usagef("int2ip 需要至少一个整数")
	}
	results := make([]ipResult, 0, len(args))
	failed := 0
	for _, s := range args {
		r := ipResult{Input: s}
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil {
			r.Value = &v
			r.Addr, err = xnet.FormatIPv4Int(v)
		}
		if err != nil {
			r.Error = err.Error()
			failed++
			a.logger.Warn(ctx, "ipv4 format failed", slog.String("input", s), slog.String("error", err.Error()))
		} else {
			a.logger.Debug(ctx, "ipv4 formatted", slog.Int64("value", v), slog.String("addr", r.Addr))
		}
		results = append(results, r)
	}

	err := emitTo(a, results, func(r ipResult) string {
		if r.Error != "" {
			return r.Input + "\tinvalid"
		}
		return r.Input + "\t" + r.Addr
	})
	if err != nil {
		return err
	}
	return failures(failed)
}

type checkResult struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Valid bool   `json:"valid"`
}

func (a *app) check(ctx context.Context, kindName string, args []string) error {
	if kindName == "" {
		return usagef("check 需要 --kind（%s）", kindList())
	}
	kind, err := xvalid.ParseKind(kindName)
	if err != nil {
		return usagef("%v", err)
	}
	if len(args) == 0 {
		return usagef("check 需要至少一个待校验字符串")
	}

	results := make([]checkResult, 0, len(args))
	failed := 0
	for _, s := range args {
		ok, err := xvalid.Validate(kind, s)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
		a.logger.Debug(ctx, "checked", slog.String("kind", kind.String()), slog.String("input", s), slog.Bool("valid", ok))
		results = append(results, checkResult{Input: s, Kind: kind.String(), Valid: ok})
	}

	err = emitTo(a, results, func(r checkResult) string {
		return r.Input + "\t" + strconv.FormatBool(r.Valid)
	})
	if err != nil {
		return err
	}
	return failures(failed)
}

type runeResult struct {
	Char string `json:"char"`
	Code string `json:"code"`
	xchar.Class
}

type charsResult struct {
	Input     string       `json:"input"`
	Chinese   bool         `json:"chinese"`
	Multibyte bool         `json:"multibyte"`
	CJK       bool         `json:"cjk"`
	Runes     []runeResult `json:"runes"`
}

func (a *app) chars(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usagef("chars 需要至少一个字符串")
	}
	results := make([]charsResult, 0, len(args))
	for _, s := range args {
		r := charsResult{
			Input:     s,
			Chinese:   xchar.ContainsChinese(s),
			Multibyte: xchar.ContainsMultibyte(s),
			CJK:       xchar.ContainsCJK(s),
			Runes:     make([]runeResult, 0, len(s)),
		}
		for _, c := range s {
			r.Runes = append(r.Runes, runeResult{
				Char:  string(c),
				Code:  fmt.Sprintf("%U", c),
				Class: xchar.Classify(c),
			})
		}
		a.logger.Debug(ctx, "classified", slog.String("input", s), slog.Int("runes", len(r.Runes)))
		results = append(results, r)
	}

	return emitTo(a, results, func(r charsResult) string {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\tchinese=%t multibyte=%t cjk=%t", r.Input, r.Chinese, r.Multibyte, r.CJK)
		for _, c := range r.Runes {
			fmt.Fprintf(&b, "\n  %s %s word=%t multibyte=%t cjk=%t", c.Code, c.Char, c.Word, c.Multibyte, c.CJK)
		}
		return b.String()
	})
}

func (a *app) kinds(_ context.Context) error {
	names := make([]string, 0, len(xvalid.Kinds()))
	for _, k := range xvalid.Kinds() {
		names = append(names, k.String())
	}
	return emitTo(a, names, func(s string) string { return s })
}

// emitTo 按输出格式写出结果：json 为缩进数组，text 为每项一行。
func emitTo[T any](a *app, items []T, line func(T) string) error {
	if a.output == outputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(a.stdout, line(it)); err != nil {
			return err
		}
	}
	return nil
}

func failures(n int) error {
	if n > 0 {
		return &exitError{code: 1}
	}
	return nil
}
