// Package mogi 管理一次模擬（交流战）会话的战绩聚合与持久化
package mogi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Position 完赛名次 (1位〜12位)
type Position int

const (
	First Position = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Eighth
	Ninth
	Tenth
	Eleventh
	Twelfth
)

// positionScores 各名次的得点
var positionScores = [12]int{15, 12, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

// FromIndex 从结算画面的行号 (0..11) 得到名次。
// 越界意味着检测逻辑已经出错，静默返回错误名次会不可逆地
// 污染战绩，所以直接 panic 终止。
func FromIndex(index int) Position {
	if index < 0 || index > 11 {
		panic(fmt.Sprintf("名次行号越界: %d", index))
	}
	return Position(index)
}

// Score 该名次的得点
func (p Position) Score() int {
	if p < 0 || p > 11 {
		panic(fmt.Sprintf("非法名次: %d", int(p)))
	}
	return positionScores[p]
}

// String 显示形式 "1".."12"
func (p Position) String() string {
	return strconv.Itoa(int(p) + 1)
}

// ParsePosition 从显示形式解析名次
func ParsePosition(s string) (Position, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("非法名次: %q", s)
	}
	return Position(n - 1), nil
}

// MarshalJSON 按 1..12 序列化，方便手工查看 result.json
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(p) + 1)
}

// UnmarshalJSON 从 1..12 反序列化
func (p *Position) UnmarshalJSON(data []byte) error {
	var rank int
	if err := json.Unmarshal(data, &rank); err != nil {
		return err
	}
	if rank < 1 || rank > 12 {
		return fmt.Errorf("非法名次: %d", rank)
	}
	*p = Position(rank - 1)
	return nil
}
