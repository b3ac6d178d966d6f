// Package course 提供赛道目录与基于 OCR 结果的赛道识别
package course

import (
	"encoding/json"
	"fmt"
)

// Series 赛道所属的系列（初出世代）
type Series int

const (
	SeriesNew Series = iota // 本作新赛道，显示时不带前缀
	SeriesSFC
	SeriesGBA
	SeriesN64
	SeriesGC
	SeriesDS
	SeriesWii
	Series3DS
	SeriesTour
)

// AllSeries 全系列，遍历目录索引时使用
var AllSeries = []Series{
	SeriesSFC, SeriesGBA, SeriesN64, SeriesGC, SeriesDS,
	SeriesWii, Series3DS, SeriesNew, SeriesTour,
}

func (s Series) String() string {
	switch s {
	case SeriesSFC:
		return "SFC"
	case SeriesGBA:
		return "GBA"
	case SeriesN64:
		return "N64"
	case SeriesGC:
		return "GC"
	case SeriesDS:
		return "DS"
	case SeriesWii:
		return "Wii"
	case Series3DS:
		return "3DS"
	case SeriesTour:
		return "Tour"
	case SeriesNew:
		return ""
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON 以可读的系列名序列化
func (s Series) MarshalJSON() ([]byte, error) {
	if s == SeriesNew {
		return json.Marshal("New")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON 从系列名反序列化
func (s *Series) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "SFC":
		*s = SeriesSFC
	case "GBA":
		*s = SeriesGBA
	case "N64":
		*s = SeriesN64
	case "GC":
		*s = SeriesGC
	case "DS":
		*s = SeriesDS
	case "Wii":
		*s = SeriesWii
	case "3DS":
		*s = Series3DS
	case "Tour":
		*s = SeriesTour
	case "New", "":
		*s = SeriesNew
	default:
		return fmt.Errorf("未知的系列名: %s", name)
	}
	return nil
}

// Course 一条赛道，值类型，结构相等即相等
type Course struct {
	Name   string `json:"name"`
	Series Series `json:"series"`
}

// String 显示形式: "{系列} {名称}"，New 系列省略前缀
func (c Course) String() string {
	if c.Series == SeriesNew {
		return c.Name
	}
	return fmt.Sprintf("%s %s", c.Series, c.Name)
}
