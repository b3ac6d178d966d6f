// Package jptext 提供日文文本规整功能
//
// OCR 输出的同一个词会以多种写法出现：全角/半角、平假名/片假名、
// 浊音符丢失等。Normalize 把所有写法折叠到同一个规范形，
// 这样课程表查找和编辑距离比较才是稳定的。
package jptext

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// 小写假名 → 普通假名（片假名区）
var smallKana = map[rune]rune{
	'ァ': 'ア', 'ィ': 'イ', 'ゥ': 'ウ', 'ェ': 'エ', 'ォ': 'オ',
	'ッ': 'ツ', 'ャ': 'ヤ', 'ュ': 'ユ', 'ョ': 'ヨ',
	'ヮ': 'ワ', 'ヵ': 'カ', 'ヶ': 'ケ',
}

// OCR 容易把形近汉字认成片假名（或反之），统一折叠到片假名
var confusableKanji = map[rune]rune{
	'工': 'エ',
	'力': 'カ',
	'口': 'ロ',
}

// Normalize 把文本折叠到规范形
//
// 处理内容:
//   - 全角英数字 → 半角（NFKD）
//   - 半角片假名 → 全角片假名（NFKD）
//   - 浊音/半浊音符号剥离（がぱ → カハ）
//   - 平假名 → 片假名
//   - 小写假名 → 普通假名（ッ → ツ）
//   - ASCII 大写 → 小写
//   - 形近汉字 → 片假名（工 → エ）
//
// 纯函数，幂等: Normalize(Normalize(s)) == Normalize(s)
func Normalize(s string) string {
	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		// NFKD 把浊音拆成基础假名 + 结合符号，这里丢弃符号本身
		if r == '゙' || r == '゚' {
			continue
		}

		// 平假名区 (ぁ..ゖ) 与片假名区偏移固定为 0x60
		if r >= 'ぁ' && r <= 'ゖ' {
			r += 0x60
		}

		if full, ok := smallKana[r]; ok {
			r = full
		}
		if kata, ok := confusableKanji[r]; ok {
			r = kata
		}

		if r >= 'A' && r <= 'Z' {
			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}
	return b.String()
}
