// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command stateiter prints the tokens of its arguments, or of standard
// input when there are none, one token per line.
package main

import "code.hybscloud.com/stateiter/internal/cli"

func main() {
	cli.Main()
}
