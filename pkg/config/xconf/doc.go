// Package xconf 基于 koanf 的最小化配置加载器。
//
// 支持 YAML（.yaml/.yml）和 JSON（.json），通过 rawbytes provider 加载，
// 不做默认值注入和必选字段校验，这些由调用方在 Unmarshal 后处理。
//
//	cfg, err := xconf.New("xcheck.yaml")
//	if err != nil {
//		return err
//	}
//	var opts struct {
//		Log struct {
//			Level  string `koanf:"level"`
//			Format string `koanf:"format"`
//		} `koanf:"log"`
//	}
//	if err := cfg.Unmarshal("", &opts); err != nil {
//		return err
//	}
//
// Unmarshal 使用 mapstructure，允许弱类型转换（"8080" 可转为 int）。
// [Config.Reload] 解析失败时保留旧配置。
package xconf
