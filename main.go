// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"scarab/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the scarab syntax checker, %s!\n", currentUser.Username)
	fmt.Println("Type a line of Scala to check it, :paste ... :end for blocks, :quit to leave.")
	repl.Start(os.Stdin, os.Stdout)
}
