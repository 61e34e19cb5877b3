// Command mergel10n synchronizes Localizable.strings files with a master key list.
package main

import "mergel10n/internal/cli"

func main() {
	cli.Execute()
}
