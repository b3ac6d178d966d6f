// Package config 管理 settings.toml 配置文件
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// 采集后端
const (
	BackendDevice = "device" // 采集卡 / UVC 设备 (OpenCV VideoCapture)
	BackendScreen = "screen" // 屏幕区域截取 (robotgo)
)

// Settings 应用配置
//
// 识别管线按固定分辨率标定，CaptureWidth/CaptureHeight 修改后
// 检测坐标会整体按比例缩放，但模板素材仍以 1280x720 为基准。
type Settings struct {
	// DeviceIndex 采集设备序号 (backend=device 时生效)
	DeviceIndex int `toml:"device_index"`
	// Backend 采集后端: device / screen
	Backend string `toml:"backend"`
	// ScreenX/ScreenY 屏幕截取区域左上角 (backend=screen 时生效)
	ScreenX int `toml:"screen_x"`
	ScreenY int `toml:"screen_y"`
	// CaptureWidth/CaptureHeight 送入识别管线的帧尺寸
	CaptureWidth  int `toml:"capture_width"`
	CaptureHeight int `toml:"capture_height"`
	// RaceKind 对战类型: internet / local，影响结算横幅的判定区间
	RaceKind string `toml:"race_kind"`
	// LogLevel 日志级别
	LogLevel string `toml:"log_level"`
	// WriteLogToFile 是否把日志写入文件
	WriteLogToFile bool `toml:"write_log_to_file"`
	// AssetsDir 模板素材目录 (results.png / results_mask.png)
	AssetsDir string `toml:"assets_dir"`
	// ModelsDir OCR 模型目录
	ModelsDir string `toml:"models_dir"`
	// ResultsDir 战绩输出目录 (result.json 与截图)
	ResultsDir string `toml:"results_dir"`
	// FontPath 截图标注用字体 (可选，留空则不标注)
	FontPath string `toml:"font_path"`
}

// DefaultSettings 默认配置
func DefaultSettings() *Settings {
	return &Settings{
		DeviceIndex:    0,
		Backend:        BackendDevice,
		CaptureWidth:   1280,
		CaptureHeight:  720,
		RaceKind:       "internet",
		LogLevel:       "INFO",
		WriteLogToFile: false,
		AssetsDir:      "assets",
		ModelsDir:      "models",
		ResultsDir:     "results",
	}
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器，配置存放在 ~/.kartrec 下
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := filepath.Join(homeDir, ".kartrec")
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "settings.toml"),
	}
}

func (m *Manager) ensureDir() error {
	return os.MkdirAll(m.configDir, 0755)
}

// Load 加载配置，文件不存在时返回默认配置
func (m *Manager) Load() (*Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	settings := DefaultSettings()
	if _, err := toml.DecodeFile(m.configFile, settings); err != nil {
		return DefaultSettings(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	return settings, nil
}

// Save 保存配置
func (m *Manager) Save(settings *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDir(); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	f, err := os.Create(m.configFile)
	if err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	return nil
}

// Exists 检查配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// 全局配置管理器
var defaultManager = NewManager()

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	return defaultManager
}

// Load 使用默认管理器加载配置
func Load() (*Settings, error) {
	return defaultManager.Load()
}

// Save 使用默认管理器保存配置
func Save(settings *Settings) error {
	return defaultManager.Save(settings)
}
