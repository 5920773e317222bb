package purge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm は確認プロンプトを表示し、入力を1行読み取る。
// 前後の空白を除いた入力が "yes"（大文字小文字無視）と完全一致する
// 場合のみtrueを返す。それ以外の入力・空入力・EOFはすべてfalse。
func Confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "yes/[no]: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
