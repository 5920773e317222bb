// Package spam はスパム判定されたフィードURLの除外リストを提供する。
// リストは部分文字列のリストで、URLがいずれかの部分文字列を含む場合に
// スパムとみなす。単純な包含チェックのため無関係なフィードに過剰一致する
// 可能性があるが、mire本体の判定と揃えるため意図的にこの仕様を維持している。
package spam

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed spamlist.txt
var defaultList string

// Filter はスパムフィードURLの除外フィルタ。
type Filter struct {
	substrings []string
}

// LoadDefault は埋め込みのデフォルトリストからFilterを生成する。
func LoadDefault() *Filter {
	return &Filter{substrings: parse(strings.NewReader(defaultList))}
}

// LoadFile は外部ファイルからFilterを生成する。
// 1行1エントリ、空行と#で始まる行は無視する。
func LoadFile(path string) (*Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spam list: %w", err)
	}
	defer f.Close()

	return &Filter{substrings: parse(f)}, nil
}

// Load はpathが空の場合は埋め込みリスト、それ以外は外部ファイルを読み込む。
func Load(path string) (*Filter, error) {
	if path == "" {
		return LoadDefault(), nil
	}
	return LoadFile(path)
}

// Match はURLがスパムリストのいずれかの部分文字列を含むかどうかを返す。
func (f *Filter) Match(url string) bool {
	for _, s := range f.substrings {
		if strings.Contains(url, s) {
			return true
		}
	}
	return false
}

// Len はリストのエントリ数を返す。診断出力用。
func (f *Filter) Len() int {
	return len(f.substrings)
}

func parse(r io.Reader) []string {
	var substrings []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		substrings = append(substrings, line)
	}
	return substrings
}
