// SPDX-License-Identifier: MPL-2.0

package main

import "drover-cli/cmd/drover"

func main() {
	cmd.Execute()
}
