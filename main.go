// SPDX-License-Identifier: MPL-2.0

package main

import cmd "nipkg-cli/cmd/nipkg"

func main() {
	cmd.Execute()
}
