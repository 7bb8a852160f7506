// Command timesheet is the client for the employee-management API with local
// time tracking.
package main

import "github.com/MoroniPereira/TIME-SHEET/internal/cli"

func main() {
	cli.Execute()
}
