package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[server]
port = 9001

[archive]
accepted_types = [1, 49]
file_encoding = "gbk"

[archive.chatroom_id_to_name]
"room1@chatroom" = "一群"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "default host")
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "gbk", cfg.Archive.FileEncoding)
	assert.Equal(t, "a", cfg.Archive.FileWriteMode, "default write mode")
	assert.Equal(t, "2006010215", cfg.Archive.DateFormat, "default date format")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")

	assert.True(t, cfg.AcceptedType(1))
	assert.True(t, cfg.AcceptedType(49))
	assert.False(t, cfg.AcceptedType(3))
	assert.False(t, cfg.AcceptedType(-5))

	name, ok := cfg.RoomName("room1@chatroom")
	require.True(t, ok)
	assert.Equal(t, "一群", name)

	_, ok = cfg.RoomName("missing@chatroom")
	assert.False(t, ok)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_ChatroomListFile(t *testing.T) {
	dir := t.TempDir()
	listPath := writeFile(t, dir, "chatrooms.csv", "room2@chatroom\nroom1@chatroom\n\n")
	path := writeFile(t, dir, "config.toml", `
[archive]
accepted_types = [1]
chatroom_list_file = "`+listPath+`"

[archive.chatroom_id_to_name]
"room1@chatroom" = "一群"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// 清单里新出现的群聊用 roomid 充当展示名
	name, ok := cfg.RoomName("room2@chatroom")
	require.True(t, ok)
	assert.Equal(t, "room2@chatroom", name)

	// 已命名的群聊不被清单覆盖
	name, ok = cfg.RoomName("room1@chatroom")
	require.True(t, ok)
	assert.Equal(t, "一群", name)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig(ArchiveConfig{AcceptedTypes: []int{1}})

	assert.Equal(t, "utf-8-sig", cfg.Archive.FileEncoding)
	assert.Equal(t, "a", cfg.Archive.FileWriteMode)
	assert.Equal(t, ".", cfg.Archive.BaseDir)
	assert.True(t, cfg.AcceptedType(1))
	assert.False(t, cfg.AcceptedType(2))
}
