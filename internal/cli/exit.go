package cli

import (
	"fmt"
	"os"
)

// Exitf エラーメッセージを標準エラー出力に書き出し、終了コード1で終了
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
