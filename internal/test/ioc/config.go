package ioc

import (
	"os"

	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v2"
)

// LoadConfig 集成测试和线上使用同一份配置文件
func LoadConfig(path string) {
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err = econf.LoadFromReader(f, yaml.Unmarshal); err != nil {
		panic(err)
	}
}
