package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Port     string `yaml:"port"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	JWT struct {
		Secret     string `yaml:"secret"`
		Expiration string `yaml:"expiration"`
	} `yaml:"jwt"`
	Ditto struct {
		URL       string `yaml:"url"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		Namespace string `yaml:"namespace"`
	} `yaml:"ditto"`
	Simulation struct {
		Vehicles     int     `yaml:"vehicles"`      // 仿真车辆数
		StepInterval float64 `yaml:"step_interval"` // 周期间隔，单位：秒
	} `yaml:"simulation"`
	Optimizer struct {
		Population    int     `yaml:"population"`     // 狼群规模
		MaxIterations int     `yaml:"max_iterations"` // 最大迭代次数
		W1            float64 `yaml:"w1"`             // 时延权重
	} `yaml:"optimizer"`
	Alert struct {
		AoIThreshold float64 `yaml:"aoi_threshold"` // 平均AoI告警阈值，单位：秒
	} `yaml:"alert"`
}

func LoadConfig(filePath string) (*Config, error) {
	config := &Config{}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

func InitConfig() *Config {
	config, err := LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return config
}
