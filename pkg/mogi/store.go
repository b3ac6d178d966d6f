package mogi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store 把聚合序列化到 result.json。
// 每次可观察变化都会全量重写，崩溃后可以从文件恢复会话。
type Store struct {
	path string
}

// NewStore 创建持久化存储，path 为 result.json 的完整路径
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path 返回持久化文件路径
func (s *Store) Path() string {
	return s.path
}

// Save 全量写出聚合。写失败必须向上传播：
// 持久化文件是会话恢复的唯一依据，带着损坏状态继续跑等于静默丢数据。
func (s *Store) Save(m *MogiResult) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化战绩失败: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", s.path, err)
	}
	return nil
}

// Load 读取上次保存的聚合，文件不存在时返回 (nil, nil)
func (s *Store) Load() (*MogiResult, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取 %s 失败: %w", s.path, err)
	}

	var m MogiResult
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("解析 %s 失败: %w", s.path, err)
	}
	return &m, nil
}
