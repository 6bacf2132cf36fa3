package config

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Archive   ArchiveConfig   `mapstructure:"archive"`

	// acceptedSet 由 Archive.AcceptedTypes 在加载时编译而成，只读
	acceptedSet *bitset.BitSet
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

type RateLimitConfig struct {
	QPS            int64 `mapstructure:"qps"`
	Burst          int64 `mapstructure:"burst"`
	MaxConcurrency int   `mapstructure:"max_concurrency"`
}

type ArchiveConfig struct {
	AcceptedTypes    []int             `mapstructure:"accepted_types"`
	ChatroomIDToName map[string]string `mapstructure:"chatroom_id_to_name"`
	ChatroomListFile string            `mapstructure:"chatroom_list_file"`
	FileEncoding     string            `mapstructure:"file_encoding"`
	FileWriteMode    string            `mapstructure:"file_write_mode"`
	DateFormat       string            `mapstructure:"date_format"`
	BaseDir          string            `mapstructure:"base_dir"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("archive.file_encoding", "utf-8-sig")
	v.SetDefault("archive.file_write_mode", "a")
	v.SetDefault("archive.date_format", "2006010215")
	v.SetDefault("archive.base_dir", ".")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 将配置反序列化到结构体
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if config.Archive.ChatroomIDToName == nil {
		config.Archive.ChatroomIDToName = make(map[string]string)
	}

	// 可选的群聊清单文件：单列 CSV，每行一个 roomid，
	// 未在 chatroom_id_to_name 中命名的群聊直接用 roomid 作为展示名
	if config.Archive.ChatroomListFile != "" {
		ids, err := readChatroomList(config.Archive.ChatroomListFile)
		if err != nil {
			return nil, fmt.Errorf("读取群聊清单失败: %w", err)
		}
		for _, id := range ids {
			if _, ok := config.Archive.ChatroomIDToName[id]; !ok {
				config.Archive.ChatroomIDToName[id] = id
			}
		}
	}

	config.acceptedSet = compileAcceptedTypes(config.Archive.AcceptedTypes)

	return &config, nil
}

// NewConfig 从已填充的 archive 配置段直接构建 Config（绕过配置文件）
func NewConfig(archive ArchiveConfig) *Config {
	if archive.ChatroomIDToName == nil {
		archive.ChatroomIDToName = make(map[string]string)
	}
	if archive.FileEncoding == "" {
		archive.FileEncoding = "utf-8-sig"
	}
	if archive.FileWriteMode == "" {
		archive.FileWriteMode = "a"
	}
	if archive.DateFormat == "" {
		archive.DateFormat = "2006010215"
	}
	if archive.BaseDir == "" {
		archive.BaseDir = "."
	}
	return &Config{
		Archive:     archive,
		acceptedSet: compileAcceptedTypes(archive.AcceptedTypes),
	}
}

// AcceptedType 判断消息类型码是否在采集范围内
func (c *Config) AcceptedType(t int) bool {
	return t >= 0 && c.acceptedSet.Test(uint(t))
}

// RoomName 查询群聊展示名，未配置的群聊返回 ok == false
func (c *Config) RoomName(roomID string) (string, bool) {
	name, ok := c.Archive.ChatroomIDToName[roomID]
	return name, ok
}

func compileAcceptedTypes(types []int) *bitset.BitSet {
	set := bitset.New(64)
	for _, t := range types {
		if t >= 0 {
			set.Set(uint(t))
		}
	}
	return set
}

func readChatroomList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			ids = append(ids, row[0])
		}
	}
	return ids, nil
}
