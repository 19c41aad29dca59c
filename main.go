// SPDX-License-Identifier: MPL-2.0

package main

import "puzzlebox-cli/cmd/puzzlebox"

func main() {
	cmd.Execute()
}
