// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/dais/cmd/dais"

func main() {
	cmd.Execute()
}
