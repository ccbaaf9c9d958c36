// This program provides an administrative client for talking to a
// running node.
package main

import "github.com/chalkchain/chalkchain/app/tooling/admin/commands"

func main() {
	commands.Execute()
}
