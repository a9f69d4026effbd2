package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	)
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(append([]string{"xcheck"}, args...), &out, &errb)
	return out.String(), errb.String(), code
}

func TestIP2Int(t *testing.T) {
	out, _, code := runCLI(t, "ip2int", "192.168.1.1", "10.0.0.1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "192.168.1.1\t3232235777\n10.0.0.1\t167772161\n", out)
}

func TestIP2IntLooseAndStrict(t *testing.T) {
	out, _, code := runCLI(t, "ip2int", "999.0.0.1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "999.0.0.1\t16760438785\n", out)

	out, _, code = runCLI(t, "ip2int", "--strict", "999.0.0.1", "1.2.3.4")
	assert.Equal(t, 1, code)
	assert.Equal(t, "999.0.0.1\tinvalid\n1.2.3.4\t16909060\n", out)
}

func TestIP2IntInvalid(t *testing.T) {
	out, _, code := runCLI(t, "ip2int", "1.2.3", "a.b.c.d")
	assert.Equal(t, 1, code)
	assert.Equal(t, "1.2.3\tinvalid\na.b.c.d\tinvalid\n", out)
}

func TestInt2IP(t *testing.T) {
	out, _, code := runCLI(t, "int2ip", "3232235777", "0", "4294967295")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3232235777\t192.168.1.1\n0\t0.0.0.0\n4294967295\t255.255.255.255\n", out)

	out, _, code = runCLI(t, "int2ip", "16760438785", "abc")
	assert.Equal(t, 1, code)
	assert.Equal(t, "16760438785\tinvalid\nabc\tinvalid\n", out)
}

func TestCheck(t *testing.T) {
	out, _, code := runCLI(t, "check", "--kind", "mobile", "+8613800000000", "13800000000")
	assert.Equal(t, 0, code)
	assert.Equal(t, "+8613800000000\ttrue\n13800000000\ttrue\n", out)

	out, _, code = runCLI(t, "check", "-k", "idcard", "123456789012345678", "1234567890123456789")
	assert.Equal(t, 1, code)
	assert.Equal(t, "123456789012345678\ttrue\n1234567890123456789\tfalse\n", out)
}

func TestCheckUsageErrors(t *testing.T) {
	_, errOut, code := runCLI(t, "check", "--kind", "zipcode", "x")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown kind")

	_, _, code = runCLI(t, "check", "x")
	assert.Equal(t, 2, code)

	_, _, code = runCLI(t, "check", "--kind", "email")
	assert.Equal(t, 2, code)
}

func TestMissingArgs(t *testing.T) {
	for _, cmd := range []string{"ip2int", "int2ip", "chars"} {
		t.Run(cmd, func(t *testing.T) {
			_, errOut, code := runCLI(t, cmd)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, "参数错误")
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	_, _, code := runCLI(t, "ip2int", "--bogus", "1.2.3.4")
	assert.Equal(t, 2, code)
}

func TestChars(t *testing.T) {
	out, _, code := runCLI(t, "chars", "a你")
	assert.Equal(t, 0, code)
	want := "a你\tchinese=true multibyte=true cjk=true\n" +
		"  U+0061 a word=true multibyte=false cjk=false\n" +
		"  U+4F60 你 word=false multibyte=true cjk=true\n"
	assert.Equal(t, want, out)
}

func TestCharsJSON(t *testing.T) {
	out, _, code := runCLI(t, "-o", "json", "chars", "hello")
	require.Equal(t, 0, code)

	var got []charsResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.False(t, got[0].Chinese)
	assert.False(t, got[0].Multibyte)
	assert.Len(t, got[0].Runes, 5)
	assert.True(t, got[0].Runes[0].Word)
	assert.Equal(t, "U+0068", got[0].Runes[0].Code)
}

func TestKinds(t *testing.T) {
	out, _, code := runCLI(t, "kinds")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ip\nmobile\nemail\nurl\nidcard\n", out)
}

func TestJSONOutput(t *testing.T) {
	out, _, code := runCLI(t, "--output", "json", "ip2int", "192.168.1.1", "1.2.3")
	assert.Equal(t, 1, code)

	var got []ipResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Value)
	assert.Equal(t, int64(3232235777), *got[0].Value)
	assert.Nil(t, got[1].Value)
	assert.NotEmpty(t, got[1].Error)
}

func TestInvalidOutput(t *testing.T) {
	_, errOut, code := runCLI(t, "--output", "xml", "kinds")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "xml")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xcheck.yaml")
	content := "log:\n  level: debug\n  format: json\noutput: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, errOut, code := runCLI(t, "--config", path, "int2ip", "167772161")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"addr": "10.0.0.1"`)
	assert.Contains(t, errOut, `"level":"DEBUG"`)
	assert.Contains(t, errOut, `"msg":"ipv4 formatted"`)

	// 命令行参数优先于配置文件
	out, _, code = runCLI(t, "--config", path, "-o", "text", "int2ip", "167772161")
	require.Equal(t, 0, code)
	assert.Equal(t, "167772161\t10.0.0.1\n", out)
}

func TestConfigFileErrors(t *testing.T) {
	_, _, code := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "kinds")
	assert.Equal(t, 2, code)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600))
	_, errOut, code := runCLI(t, "--config", path, "kinds")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown level")
}

func TestWarnLogging(t *testing.T) {
	_, errOut, code := runCLI(t, "--log-level", "warn", "ip2int", "x.y")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "ipv4 parse failed")
	assert.NotContains(t, errOut, "ipv4 parsed")
}

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 1, exitCode(&exitError{code: 1}, &buf))
	assert.Empty(t, buf.String())

	assert.Equal(t, 2, exitCode(usagef("bad %s", "arg"), &buf))
	assert.Contains(t, buf.String(), "bad arg")

	buf.Reset()
	assert.Equal(t, 2, exitCode(errors.New("flag provided but not defined: -x"), &buf))

	buf.Reset()
	assert.Equal(t, 1, exitCode(errors.New("boom"), &buf))
	assert.Contains(t, buf.String(), "boom")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xcheck.log")
	_, errOut, code := runCLI(t, "--log-level", "debug", "--log-file", path, "check", "-k", "url", "https://example.com")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=checked")
	assert.Contains(t, string(data), "kind=url")
}
