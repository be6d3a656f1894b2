// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "masklint-cli/cmd/masklint"
)

func main() {
	cmd.Execute()
}
