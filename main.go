// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/PRO-2684/jiu/cmd/jiu"

func main() {
	cmd.Execute()
}
